package thumbnail

// Package thumbnail extracts a still frame from a downloaded video with ffmpeg and
// probes the video with ffprobe for diagnostics.
