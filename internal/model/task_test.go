package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		outputDir   string
		expectedDir string
		wantErr     bool
	}{
		{"valid url and dir", "https://example.com/v1", "/tmp/out", "/tmp/out", false},
		{"empty dir defaults to current", "https://example.com/v1", "", ".", false},
		{"surrounding spaces trimmed", "  https://example.com/v1 ", ".", ".", false},
		{"missing url", "", ".", "", true},
		{"not a url", "example", ".", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.url, tt.outputDir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://example.com/v1", req.URL)
			assert.Equal(t, tt.expectedDir, req.OutputDir)
		})
	}
}

func TestStage_Index(t *testing.T) {
	assert.Equal(t, 0, StageFetch.Index())
	assert.Equal(t, 4, StageThumbnail.Index())
	assert.Equal(t, -1, Stage("Unknown").Index())
	assert.Less(t, StageResolveMetadata.Index(), StageDownload.Index())
	assert.Equal(t, "Download", StageDownload.String())
}
