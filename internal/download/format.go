package download

import "github.com/ytget/yt-prodl/internal/model"

// yt-dlp format selectors
const (
	SelectorBest  = "bestvideo+bestaudio"
	Selector1080p = "bestvideo[height<=1080]+bestaudio/best[height<=1080]"
	Selector720p  = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	SelectorAudio = "bestaudio"
)

// SelectorFor maps a quality choice to a yt-dlp format selector. Unknown
// qualities get the unconstrained best video + best audio selector.
func SelectorFor(quality model.Quality) string {
	switch quality {
	case model.QualityMax:
		return SelectorBest
	case model.Quality1080p:
		return Selector1080p
	case model.Quality720p:
		return Selector720p
	default:
		return SelectorBest
	}
}
