package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	assert.Equal(t, 1, run())
}
