// Package cmd implements the ytclip command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"ytclip/internal/config"
	"ytclip/internal/consts"
	"ytclip/internal/depmanager"
	"ytclip/internal/downloader"
	"ytclip/internal/entity"
	"ytclip/internal/errs"
	"ytclip/internal/observability"
	"ytclip/internal/service"
	"ytclip/pkg/logger"
	"ytclip/pkg/urls"
)

// Streams are the process streams a run is wired to.
type Streams struct {
	In io.Reader
	// Out receives console messages.
	Out io.Writer
	// Err receives logs and usage errors.
	Err io.Writer
	// ChildOut is handed to yt-dlp so its progress output keeps the terminal.
	ChildOut io.Writer
}

type options struct {
	output  string
	quality string
	format  string
}

const example = `  ytclip https://youtube.com/watch?v=VIDEO_ID
  ytclip https://youtube.com/clip/CLIP_ID -o ~/Downloads
  ytclip URL -q 720p -f webm`

// reported errors have already been explained on the console.
var reported = []error{
	errs.ErrBinaryNotFound,
	errs.ErrDownloadCancelled,
	errs.ErrDownloadFailed,
	errs.ErrDownloadInterrupted,
}

// Execute runs the command with the process arguments and streams and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], Streams{
		In:       os.Stdin,
		Out:      colorable.NewColorableStdout(),
		Err:      os.Stderr,
		ChildOut: os.Stdout,
	})
}

// Run parses args, runs one download and returns the process exit code.
func Run(ctx context.Context, args []string, streams Streams) int {
	root := newRootCommand(streams)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return consts.ExitOK
	}

	for _, target := range reported {
		if errors.Is(err, target) {
			return consts.ExitFailure
		}
	}

	fmt.Fprintf(streams.Err, "Error: %v\nRun '%s --help' for usage.\n", err, consts.AppName)

	return consts.ExitFailure
}

func newRootCommand(streams Streams) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           consts.AppName + " <url>",
		Short:         "Download YouTube videos and clips easily",
		Long:          "Download YouTube videos and clips with yt-dlp, warning before clipping a stream that is still live.",
		Example:       example,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts, streams)
		},
	}

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	flags := root.Flags()
	flags.StringVarP(&opts.output, "output", "o", ".", "Output directory")
	flags.StringVarP(&opts.quality, "quality", "q", string(entity.QualityBest),
		"Video quality: best, worst, 2160p, 1440p, 1080p, 720p, 480p, 360p")
	flags.StringVarP(&opts.format, "format", "f", string(entity.FormatMP4), "Output format: mp4, webm, mkv")

	return root
}

// parseRequest validates flags into a request.
func parseRequest(rawURL string, opts *options) (*entity.Request, error) {
	quality, err := entity.ParseQuality(opts.quality)
	if err != nil {
		return nil, err
	}

	format, err := entity.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	url := urls.Normalize(rawURL)
	if url == "" {
		return nil, errs.ErrInvalidURL
	}

	return &entity.Request{
		URL:       url,
		OutputDir: opts.output,
		Quality:   quality,
		Format:    format,
	}, nil
}

func run(ctx context.Context, rawURL string, opts *options, streams Streams) error {
	req, err := parseRequest(rawURL, opts)
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config new: %w", err)
	}

	log, err := logger.New(&logger.Options{
		Level:  cfg.App.LogLevel,
		Writer: streams.Err,
	})
	if err != nil {
		log.WarnContext(ctx, "logger level invalid; defaulting to info", slog.Any("error", err))
	}

	log = log.With(slog.String("run_id", uuid.NewString()))

	depMgr := depmanager.New(log, cfg)
	if _, err := depMgr.Resolve(); err != nil {
		depmanager.WriteGuidance(streams.Out)

		return err
	}

	if !urls.IsURLValid(req.URL) {
		log.DebugContext(ctx, "url is not an absolute http(s) url; passing it to yt-dlp as is", slog.String("url", req.URL))
	}

	metrics := observability.New()
	defer func() {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.WarnContext(ctx, "metrics textfile", slog.Any("error", err))
		}
	}()

	dl := downloader.NewYTdlp(log, cfg, depMgr, metrics).
		WithStreams(streams.In, streams.ChildOut, streams.Err)

	orch := service.New(log, dl, metrics, streams.In, streams.Out)

	_, err = orch.Download(ctx, req)

	return err
}
