package links

// Package links finds direct media URLs in raw page HTML. The result is only
// reported to the operator; yt-dlp picks the actual download source.
