package model

// Stage identifies a step of the thumbnail pipeline
type Stage string

const (
	// StageFetch retrieves the page HTML
	StageFetch Stage = "Fetch"

	// StageExtractLinks scans the HTML for media links
	StageExtractLinks Stage = "ExtractLinks"

	// StageResolveMetadata asks yt-dlp for the video metadata
	StageResolveMetadata Stage = "ResolveMetadata"

	// StageDownload asks yt-dlp to download the best rendition
	StageDownload Stage = "Download"

	// StageThumbnail extracts a still frame with ffmpeg
	StageThumbnail Stage = "Thumbnail"
)

// Stages lists every stage in execution order
var Stages = []Stage{
	StageFetch,
	StageExtractLinks,
	StageResolveMetadata,
	StageDownload,
	StageThumbnail,
}

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}

// Index returns the position of the stage in the pipeline, or -1 if unknown
func (s Stage) Index() int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}
