package downloader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"ytclip/internal/consts"
	"ytclip/internal/entity"
	"ytclip/pkg/ptr"

	"github.com/lrstanley/go-ytdlp"
)

// errExtraData is returned when the output holds more than one JSON value.
var errExtraData = errors.New("extra data after metadata object")

// DecodeMetadata decodes `yt-dlp --dump-json` output. The output must hold exactly one
// JSON object; anything after it is an error.
func DecodeMetadata(stdout []byte) (entity.Metadata, error) {
	var info ytdlp.ExtractedInfo

	dec := json.NewDecoder(bytes.NewReader(stdout))
	if err := dec.Decode(&info); err != nil {
		return entity.Metadata{}, fmt.Errorf("decode metadata: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return entity.Metadata{}, fmt.Errorf("decode metadata: %w", errExtraData)
	}

	return MetadataFromInfo(&info), nil
}

// MetadataFromInfo picks the live clip fields out of extracted info.
func MetadataFromInfo(info *ytdlp.ExtractedInfo) entity.Metadata {
	if info == nil {
		return entity.Metadata{}
	}

	meta := entity.Metadata{
		IsLive:       info.IsLive,
		SectionStart: info.SectionStart,
		Duration:     info.Duration,
	}

	if info.LiveStatus != nil {
		meta.LiveStatus = ptr.Of(string(*info.LiveStatus))
	}

	return meta
}

// IsLiveClip reports whether meta describes a clip cut from a broadcast that is still live.
func IsLiveClip(meta entity.Metadata) bool {
	live := ptr.Deref(meta.IsLive) || ptr.Deref(meta.LiveStatus) == consts.LiveStatusIsLive

	return live && meta.SectionStart != nil
}

// Evaluate turns metadata into an availability verdict.
func Evaluate(meta entity.Metadata) entity.Availability {
	if !IsLiveClip(meta) {
		return entity.Availability{Available: true}
	}

	return entity.Availability{Available: false, Warning: LiveClipWarning(meta)}
}

// LiveClipWarning renders the live clip warning. It ends with an inline prompt and no newline.
func LiveClipWarning(meta entity.Metadata) string {
	var b strings.Builder

	b.WriteString("⚠️  WARNING: This clip is from a LIVE STREAM that is currently broadcasting.\n")
	fmt.Fprintf(&b, "   Clip timestamp: %.1fs into the stream\n", ptr.Deref(meta.SectionStart))

	if d := ptr.Deref(meta.Duration); d > 0 {
		fmt.Fprintf(&b, "   Stream length so far: %.1fs\n", d)
	}

	b.WriteString("   Current issue: yt-dlp cannot download past segments from active live streams.\n")
	b.WriteString("   \n")
	b.WriteString("   Options:\n")
	b.WriteString("   1. Wait for the stream to end and be archived, then try again\n")
	b.WriteString("   2. Download will proceed but may only capture recent stream content\n")
	b.WriteString("   \n")
	b.WriteString("   Continue anyway? (y/n): ")

	return b.String()
}
