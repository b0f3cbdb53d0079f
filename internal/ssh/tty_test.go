package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct {
	io.ReadWriter
	closed bool
}

func (n *nopCloser) Close() error { n.closed = true; return nil }

func TestSessionTtyPassesThrough(t *testing.T) {
	buf := &nopCloser{ReadWriter: bytes.NewBufferString("key")}
	tty := newTty(buf, gossh.Window{Width: 80, Height: 24}, nil)

	p := make([]byte, 3)
	n, err := tty.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "key", string(p[:n]))

	_, err = tty.Write([]byte("frame"))
	require.NoError(t, err)
	assert.NoError(t, tty.Start())
	assert.NoError(t, tty.Drain())
	assert.NoError(t, tty.Stop())
	assert.NoError(t, tty.Close())
	assert.True(t, buf.closed)
}

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := newTty(&nopCloser{ReadWriter: &bytes.Buffer{}}, gossh.Window{Width: 80, Height: 24}, winCh)

	size, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, 80, size.Width)
	assert.Equal(t, 24, size.Height)

	resized := make(chan struct{}, 4)
	tty.NotifyResize(func() { resized <- struct{}{} })
	tty.NotifyResize(func() { resized <- struct{}{} }) // second call must not start another watcher

	winCh <- gossh.Window{Width: 132, Height: 43}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	size, _ = tty.WindowSize()
	assert.Equal(t, 132, size.Width)
	assert.Equal(t, 43, size.Height)
	close(winCh)
}
