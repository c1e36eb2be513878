package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/ytget/yt-thumbnailer/internal/download"
	"github.com/ytget/yt-thumbnailer/internal/fetch"
	"github.com/ytget/yt-thumbnailer/internal/links"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/yt-thumbnailer/internal/platform"
	"github.com/ytget/yt-thumbnailer/internal/thumbnail"
)

// Console output lines
const (
	FoundLinkFormat      = "Found video link: %s\n"
	TitleFormat          = "Title: %s\n"
	ThumbnailSavedFormat = "Thumbnail saved as %s\n"
)

// RunIDPrefix prefixes generated run IDs
const RunIDPrefix = "run-"

var log = logger.Get("Pipeline")

// Pipeline runs the stages for one Request
type Pipeline struct {
	fetcher    fetch.Fetcher
	resolver   download.MetadataResolver
	downloader download.Downloader
	generator  thumbnail.Generator
	prober     thumbnail.Prober
	out        io.Writer
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithOutput redirects console output, stdout by default
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithProber enables probing the downloaded file before extracting the frame
func WithProber(prober thumbnail.Prober) Option {
	return func(p *Pipeline) { p.prober = prober }
}

// New creates a pipeline from its stage implementations
func New(fetcher fetch.Fetcher, resolver download.MetadataResolver, downloader download.Downloader, generator thumbnail.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:    fetcher,
		resolver:   resolver,
		downloader: downloader,
		generator:  generator,
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes every stage in order and returns the first error, tagged with its stage
func (p *Pipeline) Run(ctx context.Context, req model.Request) (*model.Result, error) {
	result := &model.Result{RunID: generateRunID(), Request: req}
	log.Emit(logger.INFO, "%s: processing %s into %s", result.RunID, req.URL, req.OutputDir)

	html, err := p.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, stageFailed(model.StageFetch, err)
	}

	for link := range links.Extract(html) {
		fmt.Fprintf(p.out, FoundLinkFormat, link)
		result.Links = append(result.Links, link)
	}
	log.Emit(logger.DEBUG, "%s: %d candidate links", model.StageExtractLinks, len(result.Links))

	metadata, err := p.resolver.ResolveMetadata(ctx, req.URL)
	if err != nil {
		return nil, stageFailed(model.StageResolveMetadata, err)
	}
	result.Metadata = metadata
	result.Artifacts = DeriveArtifacts(metadata, req.OutputDir)
	fmt.Fprintf(p.out, TitleFormat, metadata.Title)

	if err := p.downloader.Download(ctx, req.URL, req.OutputDir); err != nil {
		return nil, stageFailed(model.StageDownload, err)
	}

	videoPath := p.locateVideo(result.Artifacts.VideoPath)
	if err := p.generator.Generate(ctx, videoPath, result.Artifacts.ThumbnailPath); err != nil {
		return nil, stageFailed(model.StageThumbnail, err)
	}
	result.Artifacts.VideoPath = videoPath
	fmt.Fprintf(p.out, ThumbnailSavedFormat, result.Artifacts.ThumbnailPath)

	log.Emit(logger.SUCCESS, "%s: done", result.RunID)
	return result, nil
}

// DeriveArtifacts computes the video and thumbnail paths shared by the last two stages
func DeriveArtifacts(metadata model.Metadata, outputDir string) model.Artifacts {
	base := platform.SanitizeFilename(metadata.Title)
	return model.Artifacts{
		BaseName:      base,
		VideoPath:     platform.JoinOutput(outputDir, platform.VideoFileName(base, metadata.Ext)),
		ThumbnailPath: platform.JoinOutput(outputDir, platform.ThumbnailFileName(base)),
	}
}

// locateVideo finds the file yt-dlp wrote and logs what it can about it. It never
// fails: ffmpeg reports a missing input itself.
func (p *Pipeline) locateVideo(expected string) string {
	videoPath := platform.ResolveDownloadedFile(expected)
	if videoPath != expected {
		log.Emit(logger.WARNING, "expected %s, using %s", expected, videoPath)
	}

	info, err := os.Stat(videoPath)
	if err != nil {
		log.Emit(logger.WARNING, "downloaded file not found at %s", videoPath)
		return videoPath
	}
	log.Emit(logger.INFO, "video %s (%s)", videoPath, humanize.Bytes(uint64(info.Size())))

	if p.prober != nil {
		probe, err := p.prober.Probe(videoPath)
		if err != nil {
			log.Emit(logger.WARNING, "%v", err)
		} else {
			log.Emit(logger.DEBUG, "format=%s duration=%ss resolution=%dx%d", probe.FormatName, probe.Duration, probe.Width, probe.Height)
		}
	}
	return videoPath
}

func stageFailed(stage model.Stage, err error) error {
	log.Emit(logger.ERROR, "%s failed: %v", stage, err)
	return &model.StageError{Stage: stage, Err: err}
}

// generateRunID generates a time ordered run ID, falling back to a random one
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return RunIDPrefix + uuid.NewString()
	}
	return RunIDPrefix + id.String()
}
