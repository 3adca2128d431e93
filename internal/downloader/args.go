package downloader

import (
	"fmt"
	"path/filepath"

	"ytclip/internal/consts"
	"ytclip/internal/entity"
)

// Selector returns the yt-dlp format selector for a quality token.
func Selector(q entity.Quality) string {
	if q == entity.QualityBest {
		return consts.SelectorBest
	}

	return fmt.Sprintf(consts.SelectorHeightFmt, q.Height())
}

// OutputTemplate joins the output directory and the filename template.
func OutputTemplate(outputDir, filenameTemplate string) string {
	return filepath.Join(outputDir, filenameTemplate)
}

// BuildArgs builds the yt-dlp arguments of a download.
//   - <url> -o <dir>/<template> --restrict-filenames -f <selector> --merge-output-format <container>
func BuildArgs(req entity.Request, filenameTemplate string) []string {
	return []string{
		req.URL,
		"-o", OutputTemplate(req.OutputDir, filenameTemplate),
		"--restrict-filenames",
		"-f", Selector(req.Quality),
		"--merge-output-format", string(req.Format),
	}
}
