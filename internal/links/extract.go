package links

import (
	"iter"
	"regexp"
)

// MediaLinkPattern matches absolute http(s) URLs ending in a common video extension
const MediaLinkPattern = `https?://[^\s"']+\.(mp4|mkv|webm)`

var mediaLinkRegex = regexp.MustCompile(MediaLinkPattern)

// Extract returns the media links in html in order of appearance. The sequence is
// lazy and recomputed from html on every iteration; duplicates are kept.
func Extract(html string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := html
		for {
			loc := mediaLinkRegex.FindStringIndex(rest)
			if loc == nil {
				return
			}
			if !yield(rest[loc[0]:loc[1]]) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}

// Collect gathers every link Extract yields
func Collect(html string) []string {
	var found []string
	for link := range Extract(html) {
		found = append(found, link)
	}
	return found
}
