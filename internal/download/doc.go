package download

// Package download drives yt-dlp: it resolves the metadata of a page as JSON and
// downloads the best rendition into the output directory.
