package model

// Package model defines the data carried through one pipeline run: the request,
// the resolved metadata, the derived file paths and the error taxonomy shared by
// every stage.
