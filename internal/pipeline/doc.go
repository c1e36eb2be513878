package pipeline

// Package pipeline sequences the fetch, link extraction, metadata, download and
// thumbnail stages. Stages run strictly one after another and the first failure
// ends the run.
