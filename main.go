package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ytget/yt-thumbnailer/internal/config"
	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/yt-thumbnailer/internal/pipeline"
	"github.com/ytget/yt-thumbnailer/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "yt-thumbnailer"

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	url := flags.String(config.FlagURL, "", "video page URL (required)")
	output := flags.String(config.FlagOutput, config.DefaultOutputDir, "directory for the video and thumbnail")
	verbose := flags.Bool(config.FlagVerbose, false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "%s v%s\n\nUsage: %s --url <page> [--output <dir>]\n\n", AppName, version, AppName)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return ExitUsage
	}

	if *url == "" {
		fmt.Fprintln(os.Stderr, "Error: --url is required")
		flags.Usage()
		return ExitUsage
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	if err := configureLogging(settings, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	outputDir, err := platform.ExpandOutputDir(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	req, err := model.NewRequest(*url, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	if _, err := pipeline.NewDefault(settings, pipeline.WithOutput(stdout)).Run(context.Background(), req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func configureLogging(settings *config.Settings, verbose bool) error {
	status, err := logger.ParseStatus(settings.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		status = logger.DEBUG
	}
	logger.Log.SetMinimumStatus(status)
	return nil
}
