package platform

// Package platform contains filesystem glue: output directory handling, filename
// sanitization and locating the file yt-dlp actually wrote.
