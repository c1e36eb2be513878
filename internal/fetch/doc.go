package fetch

// Package fetch retrieves the HTML of a video page with a single HTTP GET.
