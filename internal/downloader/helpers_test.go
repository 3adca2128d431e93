package downloader_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"ytclip/internal/config"
	"ytclip/internal/depmanager"
	"ytclip/internal/downloader"
	"ytclip/internal/observability"
)

type fixture struct {
	dl      *downloader.YTdlp
	metrics *observability.Metrics
	argsLog string
	stdout  *strings.Builder
}

// newFixture installs a fake yt-dlp running body and wires a downloader to it.
// The fake binary writes its arguments, one per line, to the file in $ARGS_LOG.
func newFixture(t *testing.T, body string) *fixture {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp is a shell script")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "yt-dlp")
	argsLog := filepath.Join(dir, "args.log")

	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + argsLog + "'\n" + body + "\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake yt-dlp: %v", err)
	}

	cfg := &config.Config{
		YTdlp:    config.YTdlp{Binary: bin},
		Dir:      config.Dir{FilenameTemplate: "%(title)s.%(ext)s"},
		Download: config.Download{InterruptGrace: time.Second},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	depMgr := depmanager.New(log, cfg)
	if _, err := depMgr.Resolve(); err != nil {
		t.Fatalf("resolve fake yt-dlp: %v", err)
	}

	metrics := observability.New()
	stdout := &strings.Builder{}

	dl := downloader.NewYTdlp(log, cfg, depMgr, metrics).
		WithStreams(strings.NewReader(""), stdout, io.Discard)

	return &fixture{dl: dl, metrics: metrics, argsLog: argsLog, stdout: stdout}
}

// args returns the arguments of the last fake yt-dlp invocation, or nil if it never ran.
func (fx *fixture) args(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(fx.argsLog)
	if os.IsNotExist(err) {
		return nil
	}

	if err != nil {
		t.Fatalf("read args log: %v", err)
	}

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
