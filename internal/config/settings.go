package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Command line flag names
const (
	FlagURL     = "url"
	FlagOutput  = "output"
	FlagVerbose = "verbose"
)

// Default values
const (
	DefaultOutputDir        = "."
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultYTDLPBinary      = "yt-dlp"
	DefaultFFmpegBinary     = "ffmpeg"
	DefaultFFprobeBinary    = "ffprobe"
	DefaultLogLevel         = "info"
)

// DemoURL is the page processed by the hard-coded demo binary
const DemoURL = "https://m.youtube.com/watch?v=DEa5hfcZyWo&pp=ugUHEgVlbi1VUw%3D%3D"

// Settings holds the tool locations and ambient options. Every field has a
// default, so an empty environment reproduces the plain yt-dlp/ffmpeg behaviour.
type Settings struct {
	YTDLPBinary   string `env:"YTDLP_BINARY" env-default:"yt-dlp"`
	FFmpegBinary  string `env:"FFMPEG_BINARY" env-default:"ffmpeg"`
	FFprobeBinary string `env:"FFPROBE_BINARY" env-default:"ffprobe"`
	UserAgent     string `env:"HTTP_USER_AGENT"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads Settings from the environment
func Load() (*Settings, error) {
	settings := &Settings{}
	if err := cleanenv.ReadEnv(settings); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment - %v", err.Error())
	}

	return settings, nil
}

// Default returns Settings populated with default values only
func Default() *Settings {
	return &Settings{
		YTDLPBinary:   DefaultYTDLPBinary,
		FFmpegBinary:  DefaultFFmpegBinary,
		FFprobeBinary: DefaultFFprobeBinary,
		LogLevel:      DefaultLogLevel,
	}
}

// OutputTemplate returns the yt-dlp output template rooted at dir
func OutputTemplate(dir string) string {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if dir[len(dir)-1] == '/' {
		return dir + DefaultFilenameTemplate
	}
	return dir + "/" + DefaultFilenameTemplate
}
