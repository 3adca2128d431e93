//go:build integration
// +build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"ytclip/cmd"
)

// fakeYTdlp answers `--dump-json` with probeJSON and appends every other invocation's
// arguments, one per line followed by a "--" separator, to calls.log. It then exits with downloadExit.
const fakeYTdlp = `#!/bin/sh
case " $* " in
*" --dump-json "*)
  cat "$FAKE_DIR/probe.json"
  exit 0
  ;;
esac
printf '%s\n' "$@" >> "$FAKE_DIR/calls.log"
echo '--' >> "$FAKE_DIR/calls.log"
echo "[download] Destination: fake.webm"
exit "$(cat "$FAKE_DIR/exit_code")"
`

type fixture struct {
	dir    string
	outDir string
	prom   string
	out    strings.Builder
	child  strings.Builder
	errOut strings.Builder
}

func newFixture(t *testing.T, probeJSON string, downloadExit string) *fixture {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("integration fake yt-dlp helper uses shell script")
	}

	fx := &fixture{dir: t.TempDir()}
	fx.outDir = filepath.Join(fx.dir, "downloads")
	fx.prom = filepath.Join(fx.dir, "ytclip.prom")

	files := map[string]string{
		"yt-dlp":     fakeYTdlp,
		"probe.json": probeJSON,
		"exit_code":  downloadExit,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(fx.dir, name), []byte(content), 0o755); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	t.Setenv("FAKE_DIR", fx.dir)
	t.Setenv("YTCLIP_YTDLP_BINARY", filepath.Join(fx.dir, "yt-dlp"))
	t.Setenv("YTCLIP_METRICS_TEXTFILE", fx.prom)
	t.Setenv("YTCLIP_APP_LOG_LEVEL", "debug")

	return fx
}

func (fx *fixture) run(t *testing.T, input string, args ...string) int {
	t.Helper()

	return cmd.Run(t.Context(), args, cmd.Streams{
		In:       strings.NewReader(input),
		Out:      &fx.out,
		Err:      &fx.errOut,
		ChildOut: &fx.child,
	})
}

// calls returns the argument lists of every download invocation.
func (fx *fixture) calls(t *testing.T) [][]string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(fx.dir, "calls.log"))
	if os.IsNotExist(err) {
		return nil
	}

	if err != nil {
		t.Fatalf("read calls log: %v", err)
	}

	var (
		calls   [][]string
		current []string
	)

	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line == "--" {
			calls = append(calls, current)
			current = nil

			continue
		}

		current = append(current, line)
	}

	return calls
}
