package downloader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lrstanley/go-ytdlp"
)

// Result wraps ytdlp.Result for custom logging.
type Result struct {
	*ytdlp.Result
}

// LogValue implements the slog.LogValuer interface for custom logging of Result.
func (r Result) LogValue() slog.Value {
	if r.Result == nil {
		return slog.GroupValue(slog.String("error", "nil result"))
	}

	return slog.GroupValue(
		slog.String("executable", r.Executable),
		slog.String("args", strings.Join(r.Args, " ")),
		slog.Int("exit_code", r.ExitCode),
		slog.String("stderr", r.Stderr),
		slog.String("stdout_size", fmt.Sprintf("%dB", len(r.Stdout))),
	)
}
