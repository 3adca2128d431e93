package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"ytclip/internal/config"
	"ytclip/internal/depmanager"
	"ytclip/internal/entity"
	"ytclip/internal/errs"
	"ytclip/internal/observability"
	"ytclip/pkg/shellquote"

	"github.com/lrstanley/go-ytdlp"
)

const (
	// exitCodeUnknown is reported when yt-dlp did not run to an exit status.
	exitCodeUnknown = -1
	// interruptSettle is how long a failed run waits for a pending interrupt to reach ctx.
	interruptSettle = 100 * time.Millisecond
)

// YTdlp represents a yt-dlp downloader.
type YTdlp struct {
	log     *slog.Logger
	cfg     *config.Config
	depMgr  *depmanager.Manager
	metrics *observability.Metrics

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ Downloader = (*YTdlp)(nil)

// NewYTdlp creates a new YTdlp downloader attached to the process terminal.
func NewYTdlp(
	log *slog.Logger,
	cfg *config.Config,
	depMgr *depmanager.Manager,
	metrics *observability.Metrics,
) *YTdlp {
	return &YTdlp{
		log:     log.With(slog.String("package", "downloader"), slog.String("downloader", "ytdlp")),
		cfg:     cfg,
		depMgr:  depMgr,
		metrics: metrics,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithStreams replaces the streams the download process inherits.
func (d *YTdlp) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *YTdlp {
	d.stdin, d.stdout, d.stderr = stdin, stdout, stderr

	return d
}

func (d *YTdlp) binPath() string {
	if path := d.depMgr.BinaryPath(depmanager.BinaryYTdlp); path != "" {
		return path
	}

	return d.cfg.YTdlp.Binary
}

// Probe runs `yt-dlp --dump-json <url>` and reports whether the URL is a clip of an ongoing broadcast.
// Any failure is logged at debug level and treated as available.
func (d *YTdlp) Probe(ctx context.Context, url string) entity.Availability {
	log := d.log.With(slog.String("func", "Probe"), slog.String("url", url))

	res, err := ytdlp.New().
		SetExecutable(d.binPath()).
		DumpJSON().
		Run(ctx, url)
	if err != nil {
		log.DebugContext(ctx, "metadata probe failed; assuming available",
			slog.Any("error", err),
			slog.Any("result", Result{res}))
		d.metrics.ObserveProbe(observability.ProbeFailed)

		return entity.Availability{Available: true}
	}

	meta, err := DecodeMetadata([]byte(res.Stdout))
	if err != nil {
		log.DebugContext(ctx, "metadata decode failed; assuming available",
			slog.Any("error", err),
			slog.Any("result", Result{res}))
		d.metrics.ObserveProbe(observability.ProbeFailed)

		return entity.Availability{Available: true}
	}

	avail := Evaluate(meta)
	if !avail.Available {
		log.DebugContext(ctx, "live clip detected", slog.Float64("section_start", *meta.SectionStart))
		d.metrics.ObserveProbe(observability.ProbeLiveClip)

		return avail
	}

	d.metrics.ObserveProbe(observability.ProbeAvailable)

	return avail
}

// Download runs yt-dlp in the foreground with the inherited streams and waits for it.
// Cancelling ctx sends yt-dlp an interrupt and kills it after the configured grace period.
func (d *YTdlp) Download(ctx context.Context, req entity.Request) (entity.Outcome, error) {
	bin := d.binPath()
	args := BuildArgs(req, d.cfg.Dir.FilenameTemplate)

	log := d.log.With(slog.String("func", "Download"), slog.Any("request", req))
	log.DebugContext(ctx, "executing yt-dlp", slog.String("command", shellquote.Join(bin, args)))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = d.stdin
	cmd.Stdout = d.stdout
	cmd.Stderr = d.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = d.cfg.Download.InterruptGrace

	err := cmd.Run()

	outcome := entity.Outcome{Success: err == nil, ExitCode: exitCode(cmd)}

	if err == nil && ctx.Err() == nil {
		log.DebugContext(ctx, "yt-dlp finished", slog.Any("outcome", outcome))

		return outcome, nil
	}

	if interrupted(ctx, cmd.ProcessState) {
		outcome.Success = false
		log.DebugContext(ctx, "yt-dlp interrupted", slog.Any("outcome", outcome), slog.Any("error", err))

		if err == nil {
			err = ctx.Err()
		}

		return outcome, fmt.Errorf("%w: %w", errs.ErrDownloadInterrupted, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.DebugContext(ctx, "yt-dlp failed", slog.Any("outcome", outcome))

		return outcome, fmt.Errorf("%w: exit code %d", errs.ErrDownloadFailed, outcome.ExitCode)
	}

	log.ErrorContext(ctx, "yt-dlp start", slog.Any("error", err))

	return outcome, fmt.Errorf("%w: run yt-dlp: %w", errs.ErrDownloadFailed, err)
}

// interrupted reports whether a failed run was ended by the user. The terminal delivers
// Ctrl-C to yt-dlp and to this process at the same time, so yt-dlp may exit before ctx
// observes the signal; a short settle window covers that race.
func interrupted(ctx context.Context, state *os.ProcessState) bool {
	if ctx.Err() != nil || killedByInterrupt(state) {
		return true
	}

	timer := time.NewTimer(interruptSettle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return true
	case <-timer.C:
		return false
	}
}

func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return exitCodeUnknown
	}

	return cmd.ProcessState.ExitCode()
}
