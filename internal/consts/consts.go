// Package consts defines application-wide constants.
package consts

import "os"

// AppName is the command name.
const AppName = "ytclip"

// Format selectors.
const (
	// SelectorBest prefers the HLS formats that cut clips cleanly, then falls back to DASH.
	SelectorBest = "301/300/299+140/bestvideo+bestaudio/best"
	// SelectorHeightFmt caps video height and pairs it with the best audio.
	SelectorHeightFmt = "bestvideo[height<=%s]+bestaudio/best"
)

// LiveStatusIsLive is the yt-dlp live_status value of an ongoing broadcast.
const LiveStatusIsLive = "is_live"

// ConfirmYes is the only answer that continues a flagged download.
const ConfirmYes = "y"

// DirPerm is the permission of created output directories.
const DirPerm os.FileMode = 0o755

// Exit codes of the process.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Console messages.
const (
	MsgNotInstalled   = "❌ yt-dlp is not installed!"
	MsgInstallHint    = "Install it with:"
	MsgInstallPip     = "  pip install yt-dlp"
	MsgInstallOr      = "or:"
	MsgInstallBrew    = "  brew install yt-dlp"
	MsgCancelled      = "❌ Download cancelled"
	MsgComplete       = "✅ Download complete!"
	MsgFailedCodeFmt  = "❌ Download failed with error code %d"
	MsgInterrupted    = "⚠️  Download cancelled by user"
	MsgDownloadingFmt = "📥 Downloading from: %s"
	MsgSavingFmt      = "📁 Saving to: %s"
	MsgQualityFmt     = "🎬 Quality: %s, Format: %s"
)
