package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ytget/yt-thumbnailer/internal/config"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/yt-thumbnailer/internal/pipeline"
)

// Runs the pipeline against the built-in demo page, writing into the current directory.
func main() {
	os.Exit(run())
}

func run() int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	status, err := logger.ParseStatus(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Log.SetMinimumStatus(status)

	req, err := model.NewRequest(config.DemoURL, config.DefaultOutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if _, err := pipeline.NewDefault(settings).Run(context.Background(), req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
