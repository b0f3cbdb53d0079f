// dungeoncrawl-server serves the game over SSH. Every connection plays its
// own single-player game; saves are kept per SSH user. Build:
//
//	go build -o dungeoncrawl-server ./cmd/server
//
// Usage:
//
//	./dungeoncrawl-server [-port 2222] [-key server_host_key] [-config dungeon.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/logging"
	"dungeoncrawl/internal/persist"
	internalssh "dungeoncrawl/internal/ssh"
	"dungeoncrawl/internal/term"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgFile := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *port, *keyFile); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger, port int, keyFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}
	saves, err := newSaves(ctx, cfg.Save)
	if err != nil {
		return err
	}
	defer saves.Close()

	h := &handler{cfg: cfg, logger: logger, saves: saves}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     h.handleSession,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		// Any client may connect. Add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real authentication.
		HostSigners: []gossh.Signer{signer},
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logger.Info("listening", zap.Int("port", port), zap.String("save_backend", cfg.Save.Backend))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return err
	}
	return nil
}

// saves hands out one store per SSH user. SQL backends share a single
// connection pool; file saves get one file per user.
type saves struct {
	cfg config.Save
	sql *persist.SQLStore
}

func newSaves(ctx context.Context, cfg config.Save) (*saves, error) {
	s := &saves{cfg: cfg}
	if cfg.Backend == "" || cfg.Backend == "file" {
		return s, nil
	}
	st, err := persist.Open(ctx, cfg, "")
	if err != nil {
		return nil, err
	}
	s.sql = st.(*persist.SQLStore)
	return s, nil
}

func (s *saves) For(ctx context.Context, user string) (persist.Store, error) {
	if s.sql != nil {
		return s.sql.WithSlot(user), nil
	}
	return persist.Open(ctx, s.cfg, user)
}

func (s *saves) Close() error {
	if s.sql != nil {
		return s.sql.Close()
	}
	return nil
}

type handler struct {
	cfg    config.Config
	logger *zap.Logger
	saves  *saves
}

// handleSession runs one game for the lifetime of the connection.
func (h *handler) handleSession(s gossh.Session) {
	user := sanitizeName(s.User())
	if user == "" {
		user = "anonymous"
	}
	log := h.logger.With(zap.String("user", user), zap.String("remote", s.RemoteAddr().String()))

	tty, termName, err := internalssh.NewSessionTty(s)
	if err != nil {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if !allowedTerms[termName] {
		termName = "xterm-256color"
	}

	// tcell reads TERM from the environment while building the screen.
	termMu.Lock()
	_ = os.Setenv("TERM", termName)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	ctx := s.Context()
	store, err := h.saves.For(ctx, user)
	if err != nil {
		log.Error("open save store", zap.Error(err))
		return
	}
	defer store.Close()

	engine, err := game.New(ctx, h.cfg, game.WithStore(store), game.WithLogger(log))
	if err != nil {
		log.Error("start game", zap.Error(err))
		return
	}
	log.Info("session started")
	if err := term.New(screen, engine).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("session ended", zap.Error(err))
		return
	}
	log.Info("session ended")
}

var termMu sync.Mutex

// allowedTerms are the TERM values passed through to terminfo lookup.
// Others fall back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const maxNameBytes = 16

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	logger.Info("generating host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; a fresh key is generated next time.
	if block, err := xssh.MarshalPrivateKey(key, "dungeoncrawl server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("could not save host key", zap.Error(err))
		}
	}
	return signer, nil
}
