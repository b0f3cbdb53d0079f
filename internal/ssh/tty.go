// Package ssh lets tcell draw to a remote terminal over a gliderlabs/ssh
// session.
package ssh

import (
	"errors"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("ssh: session has no pty")

// SessionTty implements tcell.Tty on top of an SSH channel. Each connected
// client gets its own SessionTty and tcell.Screen.
type SessionTty struct {
	rw    io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watch    sync.Once
}

// NewSessionTty wraps s, reporting ErrNoPty when the client asked for no
// terminal. The returned term is the client's TERM.
func NewSessionTty(s gossh.Session) (tty *SessionTty, term string, err error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, "", ErrNoPty
	}
	return newTty(s, pty.Window, winCh), pty.Term, nil
}

func newTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{rw: rw, window: win, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the client's latest terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize installs cb, replacing any earlier callback. The first call
// starts draining window changes for the lifetime of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *SessionTty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

var _ tcell.Tty = (*SessionTty)(nil)
