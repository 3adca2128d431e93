// Package service runs a single download request end to end.
package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"ytclip/internal/consts"
	"ytclip/internal/downloader"
	"ytclip/internal/entity"
	"ytclip/internal/errs"
	"ytclip/internal/observability"
)

// NotifyFunc derives a context cancelled on the given signals; signal.NotifyContext by default.
type NotifyFunc func(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc)

// Orchestrator drives one request through
// output dir => probe => [confirm] => download => report.
type Orchestrator struct {
	log     *slog.Logger
	dl      downloader.Downloader
	metrics *observability.Metrics
	in      *bufio.Reader
	out     io.Writer
	notify  NotifyFunc
}

// New creates an orchestrator that prompts on in and reports on out.
func New(
	log *slog.Logger,
	dl downloader.Downloader,
	metrics *observability.Metrics,
	in io.Reader,
	out io.Writer,
) *Orchestrator {
	return &Orchestrator{
		log:     log.With(slog.String("package", "service")),
		dl:      dl,
		metrics: metrics,
		in:      bufio.NewReader(in),
		out:     out,
		notify:  signal.NotifyContext,
	}
}

// WithNotify replaces the interrupt hook around the download step.
func (o *Orchestrator) WithNotify(fn NotifyFunc) *Orchestrator {
	o.notify = fn

	return o
}

// Download runs the request. A nil error means yt-dlp exited with status zero.
func (o *Orchestrator) Download(ctx context.Context, req *entity.Request) (entity.Outcome, error) {
	if req == nil {
		return entity.Outcome{}, errs.ErrRequestNil
	}

	log := o.log.With(slog.Any("request", *req))

	if err := os.MkdirAll(req.OutputDir, consts.DirPerm); err != nil {
		return entity.Outcome{}, fmt.Errorf("create output directory: %w", err)
	}

	avail := o.dl.Probe(ctx, req.URL)
	if !avail.Available && avail.Warning != "" {
		if !o.confirm(avail.Warning) {
			fmt.Fprintln(o.out, "\n"+consts.MsgCancelled)
			o.metrics.ObserveDownload(observability.DownloadCancelled, time.Time{})
			log.DebugContext(ctx, "live clip download declined")

			return entity.Outcome{}, errs.ErrDownloadCancelled
		}
	}

	o.printPlan(req)

	dlCtx, stop := o.notify(ctx, os.Interrupt)
	defer stop()

	started := time.Now()

	outcome, err := o.dl.Download(dlCtx, *req)

	switch {
	case err == nil:
		fmt.Fprintln(o.out, "\n"+consts.MsgComplete)
		o.metrics.ObserveDownload(observability.DownloadSuccess, started)
	case errors.Is(err, errs.ErrDownloadInterrupted):
		fmt.Fprintln(o.out, "\n\n"+consts.MsgInterrupted)
		o.metrics.ObserveDownload(observability.DownloadInterrupted, started)
	default:
		fmt.Fprintf(o.out, "\n"+consts.MsgFailedCodeFmt+"\n", outcome.ExitCode)
		o.metrics.ObserveDownload(observability.DownloadFailed, started)
	}

	log.DebugContext(ctx, "download finished", slog.Any("outcome", outcome), slog.Any("error", err))

	return outcome, err
}

// confirm shows the warning and reads one answer. Only "y" continues.
func (o *Orchestrator) confirm(warning string) bool {
	fmt.Fprint(o.out, warning)

	line, err := o.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		o.log.Debug("read confirmation", slog.Any("error", err))

		return false
	}

	return strings.ToLower(strings.TrimSpace(line)) == consts.ConfirmYes
}

func (o *Orchestrator) printPlan(req *entity.Request) {
	dir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		dir = req.OutputDir
	}

	fmt.Fprintln(o.out)
	fmt.Fprintf(o.out, consts.MsgDownloadingFmt+"\n", req.URL)
	fmt.Fprintf(o.out, consts.MsgSavingFmt+"\n", dir)
	fmt.Fprintf(o.out, consts.MsgQualityFmt+"\n\n", req.Quality, req.Format)
}
