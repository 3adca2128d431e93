// Package downloader runs yt-dlp to inspect and download videos.
package downloader

import (
	"context"

	"ytclip/internal/entity"
)

// Downloader probes a URL for live clip issues and downloads it.
type Downloader interface {
	// Probe never fails; when the check cannot be made the URL is reported available.
	Probe(ctx context.Context, url string) entity.Availability
	Download(ctx context.Context, req entity.Request) (entity.Outcome, error)
}
