package download

import (
	"context"

	"github.com/ytget/yt-thumbnailer/internal/model"
)

// MetadataResolver resolves the title and extension of a video page
type MetadataResolver interface {
	ResolveMetadata(ctx context.Context, url string) (model.Metadata, error)
}

// Downloader downloads the best rendition of a video page into a directory
type Downloader interface {
	Download(ctx context.Context, url, outputDir string) error
}
