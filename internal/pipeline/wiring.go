package pipeline

import (
	"github.com/ytget/yt-thumbnailer/internal/config"
	"github.com/ytget/yt-thumbnailer/internal/download"
	"github.com/ytget/yt-thumbnailer/internal/fetch"
	"github.com/ytget/yt-thumbnailer/internal/platform"
	"github.com/ytget/yt-thumbnailer/internal/thumbnail"
)

// NewDefault wires the production stages: HTTP fetching, yt-dlp and ffmpeg run as
// OS processes whose output is streamed to the terminal.
func NewDefault(settings *config.Settings, opts ...Option) *Pipeline {
	runner := platform.NewExecRunner()
	ytdlp := download.NewService(settings.YTDLPBinary, runner)
	thumbs := thumbnail.NewService(settings.FFmpegBinary, settings.FFprobeBinary, runner)

	opts = append([]Option{WithProber(thumbs)}, opts...)
	return New(fetch.NewService(settings.UserAgent), ytdlp, ytdlp, thumbs, opts...)
}
