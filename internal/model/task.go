package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Metadata defaults used when yt-dlp omits a field
const (
	DefaultTitle = "video"
	DefaultExt   = "mp4"
)

// Request describes a single run. It is built once at startup and never modified.
type Request struct {
	URL       string `validate:"required,url"`
	OutputDir string `validate:"required"`
}

var validate = validator.New()

// NewRequest builds and validates a Request
func NewRequest(url, outputDir string) (Request, error) {
	req := Request{
		URL:       strings.TrimSpace(url),
		OutputDir: outputDir,
	}
	if req.OutputDir == "" {
		req.OutputDir = "."
	}

	if err := validate.Struct(req); err != nil {
		return Request{}, fmt.Errorf("invalid request: %w", err)
	}
	return req, nil
}

// Metadata holds the fields of the yt-dlp JSON dump the pipeline relies on
type Metadata struct {
	Title string
	Ext   string
}

// Artifacts are the file paths derived from Metadata for the download and thumbnail stages
type Artifacts struct {
	BaseName      string // sanitized title shared by both files
	VideoPath     string
	ThumbnailPath string
}

// Result summarizes a successful run
type Result struct {
	RunID     string
	Request   Request
	Links     []string
	Metadata  Metadata
	Artifacts Artifacts
}
