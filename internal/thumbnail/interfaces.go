package thumbnail

import "context"

// Generator writes a single-frame JPEG of videoPath to thumbPath
type Generator interface {
	Generate(ctx context.Context, videoPath, thumbPath string) error
}

// Prober reads stream information from a media file
type Prober interface {
	Probe(videoPath string) (*ProbeInfo, error)
}
