package model

import (
	"fmt"
	"strings"
)

// NetworkError reports a page fetch that could not complete
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ToolExecutionError reports an external tool that could not be started
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// ToolFailureError reports an external tool that ran and failed.
// ExitCode is -1 when the tool was never invoked because its input was unusable.
type ToolFailureError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolFailureError) Error() string {
	var b strings.Builder
	if e.ExitCode >= 0 {
		b.WriteString(fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode))
	} else {
		b.WriteString(fmt.Sprintf("%s failed", e.Tool))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		b.WriteString(": ")
		b.WriteString(lastLine(stderr))
	}
	return b.String()
}

func (e *ToolFailureError) Unwrap() error { return e.Err }

// ParseError reports tool output that is not the JSON shape we expect
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse metadata: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StageError tags an error with the pipeline stage it came from
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// lastLine keeps error messages to a single line; yt-dlp and ffmpeg put the cause last
func lastLine(s string) string {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return s
}
