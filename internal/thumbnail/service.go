package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/ytget/yt-thumbnailer/internal/config"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/yt-thumbnailer/internal/platform"
)

var log = logger.Get("Thumbnail")

// FFmpeg constants for frame extraction
const (
	OverwriteFlag = "-y"
	InputFlag     = "-i"
	SeekFlag      = "-ss"
	FramesFlag    = "-vframes"
	SeekTimestamp = "00:00:01"
	FrameCount    = "1"
)

var errPathNotText = errors.New("video path is not valid UTF-8")

// ProbeInfo is the subset of ffprobe output logged before extraction
type ProbeInfo struct {
	FormatName string
	Duration   string
	Width      int
	Height     int
}

// Service handles ffmpeg/ffprobe invocations
type Service struct {
	ffmpegBinary  string
	ffprobeBinary string
	runner        platform.Runner
}

// NewService creates a new thumbnail service
func NewService(ffmpegBinary, ffprobeBinary string, runner platform.Runner) *Service {
	if ffmpegBinary == "" {
		ffmpegBinary = config.DefaultFFmpegBinary
	}
	if ffprobeBinary == "" {
		ffprobeBinary = config.DefaultFFprobeBinary
	}
	return &Service{
		ffmpegBinary:  ffmpegBinary,
		ffprobeBinary: ffprobeBinary,
		runner:        runner,
	}
}

// Generate seeks one second into videoPath and writes one frame to thumbPath
func (s *Service) Generate(ctx context.Context, videoPath, thumbPath string) error {
	if !utf8.ValidString(videoPath) {
		return &model.ToolFailureError{Tool: filepath.Base(s.ffmpegBinary), ExitCode: -1, Err: errPathNotText}
	}

	log.Emit(logger.INFO, "extracting frame at %s from %s", SeekTimestamp, videoPath)
	if err := s.runner.Run(ctx, s.ffmpegBinary, BuildFFmpegArgs(videoPath, thumbPath)...); err != nil {
		return err
	}

	log.Emit(logger.SUCCESS, "wrote %s", thumbPath)
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments. An existing thumbnail is
// overwritten without prompting.
func BuildFFmpegArgs(videoPath, thumbPath string) []string {
	return []string{
		OverwriteFlag,        // Overwrite output file
		InputFlag, videoPath, // Input file
		SeekFlag, SeekTimestamp, // Seek position
		FramesFlag, FrameCount, // Single frame
		thumbPath, // Output image
	}
}

// Probe reads format and first video stream information with ffprobe
func (s *Service) Probe(videoPath string) (*ProbeInfo, error) {
	cfg := ffmpeg.Config{
		FfmpegBinPath:  s.ffmpegBinary,
		FfprobeBinPath: s.ffprobeBinary,
	}
	metadata, err := ffmpeg.New(&cfg).Input(videoPath).GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("failed to probe %s using ffprobe: %s", videoPath, err.Error())
	}

	info := &ProbeInfo{}
	if format := metadata.GetFormat(); format != nil {
		info.FormatName = format.GetFormatName()
		info.Duration = format.GetDuration()
	}
	for _, stream := range metadata.GetStreams() {
		if stream.GetCodecType() == "video" {
			info.Width = stream.GetWidth()
			info.Height = stream.GetHeight()
			break
		}
	}

	return info, nil
}
