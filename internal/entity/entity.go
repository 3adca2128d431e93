// Package entity defines the core entities used in the application.
package entity

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"ytclip/internal/errs"
)

// Quality is the requested video quality.
type Quality string

const (
	// QualityBest selects the clip-friendly fallback chain.
	QualityBest Quality = "best"
	// QualityWorst is passed through as a height token.
	QualityWorst Quality = "worst"
	// Height caps.
	Quality2160p Quality = "2160p"
	Quality1440p Quality = "1440p"
	Quality1080p Quality = "1080p"
	Quality720p  Quality = "720p"
	Quality480p  Quality = "480p"
	Quality360p  Quality = "360p"
)

// Qualities lists accepted quality tokens in help order.
var Qualities = []Quality{
	QualityBest, QualityWorst, Quality2160p, Quality1440p, Quality1080p, Quality720p, Quality480p, Quality360p,
}

// ParseQuality validates a quality token.
func ParseQuality(raw string) (Quality, error) {
	q := Quality(raw)
	if !slices.Contains(Qualities, q) {
		return "", fmt.Errorf("%w: %q (choose from %s)", errs.ErrInvalidQuality, raw, joinTokens(Qualities))
	}

	return q, nil
}

// Height returns the numeric part of the token, e.g. 720p => 720.
func (q Quality) Height() string {
	return strings.ReplaceAll(string(q), "p", "")
}

// Format is the output container.
type Format string

// Supported containers.
const (
	FormatMP4  Format = "mp4"
	FormatWEBM Format = "webm"
	FormatMKV  Format = "mkv"
)

// Formats lists accepted containers in help order.
var Formats = []Format{FormatMP4, FormatWEBM, FormatMKV}

// ParseFormat validates a container token.
func ParseFormat(raw string) (Format, error) {
	f := Format(raw)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q (choose from %s)", errs.ErrInvalidFormat, raw, joinTokens(Formats))
	}

	return f, nil
}

func joinTokens[T ~string](tokens []T) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, string(t))
	}

	return strings.Join(parts, ", ")
}

// Request is a single download request built from CLI input.
type Request struct {
	URL       string
	OutputDir string
	Quality   Quality
	Format    Format
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", r.URL),
		slog.String("output_dir", r.OutputDir),
		slog.String("quality", string(r.Quality)),
		slog.String("format", string(r.Format)),
	)
}

// Metadata holds the extracted info fields used by the live clip check.
// Absent fields stay nil.
type Metadata struct {
	IsLive       *bool
	LiveStatus   *string
	SectionStart *float64
	Duration     *float64
}

// Availability is the result of the live clip check.
type Availability struct {
	Available bool
	// Warning is set when Available is false; it ends with an inline y/n prompt.
	Warning string
}

// Outcome is the result of one download run.
type Outcome struct {
	Success  bool
	ExitCode int
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (o Outcome) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("success", o.Success),
		slog.Int("exit_code", o.ExitCode),
	)
}
