// Package depmanager locates the external binaries the application shells out to.
package depmanager

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"ytclip/internal/config"
	"ytclip/internal/consts"
	"ytclip/internal/errs"
)

// BinaryName represents the name of a binary dependency.
type BinaryName string

// BinaryYTdlp is the downloader binary.
const BinaryYTdlp BinaryName = "yt-dlp"

// LookPathFunc resolves a binary name to a path.
type LookPathFunc func(file string) (string, error)

// Manager resolves binary dependencies from the system PATH.
type Manager struct {
	log      *slog.Logger
	cfg      *config.Config
	lookPath LookPathFunc

	mu       sync.RWMutex
	binPaths map[BinaryName]string // binary name -> resolved path
}

// New creates a new dependency manager.
func New(log *slog.Logger, cfg *config.Config) *Manager {
	return &Manager{
		log:      log.With(slog.String("package", "depmanager")),
		cfg:      cfg,
		lookPath: exec.LookPath,
		binPaths: make(map[BinaryName]string),
	}
}

// WithLookPath replaces the PATH lookup, mainly for tests.
func (m *Manager) WithLookPath(fn LookPathFunc) *Manager {
	m.lookPath = fn

	return m
}

// Resolve looks up the configured yt-dlp binary and remembers its path.
func (m *Manager) Resolve() (string, error) {
	name := m.cfg.YTdlp.Binary
	if name == "" {
		name = string(BinaryYTdlp)
	}

	path, err := m.lookPath(name)
	if err != nil {
		m.log.Debug("binary lookup failed", slog.String("binary", name), slog.Any("error", err))

		return "", fmt.Errorf("%w: %s: %w", errs.ErrBinaryNotFound, name, err)
	}

	m.mu.Lock()
	m.binPaths[BinaryYTdlp] = path
	m.mu.Unlock()

	m.log.Debug("binary resolved", slog.String("binary", name), slog.String("path", path))

	return path, nil
}

// BinaryPath returns the resolved path of a binary, or empty if Resolve has not succeeded.
func (m *Manager) BinaryPath(name BinaryName) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.binPaths[name]
}

// Guidance returns install instructions for a missing yt-dlp.
func Guidance() string {
	return strings.Join([]string{
		consts.MsgNotInstalled,
		"",
		consts.MsgInstallHint,
		consts.MsgInstallPip,
		"",
		consts.MsgInstallOr,
		consts.MsgInstallBrew,
	}, "\n") + "\n"
}

// WriteGuidance prints install instructions to w.
func WriteGuidance(w io.Writer) {
	fmt.Fprint(w, Guidance())
}
