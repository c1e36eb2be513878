package logger

// Package logger provides named, levelled and coloured log emitters. Every
// pipeline component obtains its own emitter with Get; messages are written to
// stderr so stdout stays reserved for the tool's console output.
