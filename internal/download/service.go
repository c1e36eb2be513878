package download

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ytget/yt-thumbnailer/internal/config"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/yt-thumbnailer/internal/platform"
)

var log = logger.Get("Download")

// yt-dlp flags
const (
	DumpJSONFlag   = "-j"
	FormatFlag     = "-f"
	OutputFlag     = "-o"
	BestFormat     = "best"
	TitleField     = "title"
	ExtensionField = "ext"
)

// Service handles yt-dlp invocations
type Service struct {
	binary string
	runner platform.Runner
}

// NewService creates a new download service running binary through runner
func NewService(binary string, runner platform.Runner) *Service {
	if binary == "" {
		binary = config.DefaultYTDLPBinary
	}
	return &Service{binary: binary, runner: runner}
}

// ResolveMetadata runs yt-dlp in JSON dump mode and normalizes its output
func (s *Service) ResolveMetadata(ctx context.Context, url string) (model.Metadata, error) {
	out, err := s.runner.Output(ctx, s.binary, BuildMetadataArgs(url)...)
	if err != nil {
		return model.Metadata{}, err
	}

	metadata, err := ParseMetadata(out)
	if err != nil {
		return model.Metadata{}, err
	}

	log.Emit(logger.DEBUG, "resolved metadata title=%q ext=%q", metadata.Title, metadata.Ext)
	return metadata, nil
}

// Download runs yt-dlp with the best format, writing into outputDir
func (s *Service) Download(ctx context.Context, url, outputDir string) error {
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	log.Emit(logger.INFO, "downloading %s into %s", url, outputDir)
	if err := s.runner.Run(ctx, s.binary, BuildDownloadArgs(url, outputDir)...); err != nil {
		return err
	}

	log.Emit(logger.SUCCESS, "download of %s finished", url)
	return nil
}

// BuildMetadataArgs builds the yt-dlp arguments for dumping metadata
func BuildMetadataArgs(url string) []string {
	return []string{DumpJSONFlag, url}
}

// BuildDownloadArgs builds the yt-dlp arguments for downloading into outputDir
func BuildDownloadArgs(url, outputDir string) []string {
	return []string{
		FormatFlag, BestFormat,
		OutputFlag, config.OutputTemplate(outputDir),
		url,
	}
}

// ParseMetadata decodes a yt-dlp JSON dump. An array root yields its first
// element; title and ext fall back to defaults when absent or not strings.
func ParseMetadata(data []byte) (model.Metadata, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return model.Metadata{}, &model.ParseError{Err: err}
	}

	var object map[string]interface{}
	switch v := root.(type) {
	case map[string]interface{}:
		object = v
	case []interface{}:
		if len(v) > 0 {
			first, ok := v[0].(map[string]interface{})
			if !ok {
				return model.Metadata{}, &model.ParseError{Err: fmt.Errorf("first array element is %s, not an object", jsonKind(v[0]))}
			}
			object = first
		}
	default:
		return model.Metadata{}, &model.ParseError{Err: errors.New("JSON root is " + jsonKind(root) + ", not an object or array")}
	}

	return model.Metadata{
		Title: stringField(object, TitleField, model.DefaultTitle),
		Ext:   stringField(object, ExtensionField, model.DefaultExt),
	}, nil
}

func stringField(object map[string]interface{}, key, fallback string) string {
	value, ok := object[key].(string)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []interface{}:
		return "an array"
	default:
		return "an object"
	}
}
