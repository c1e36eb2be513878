package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, CreateDirectoryIfNotExists(testDir))

	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call should not fail
	require.NoError(t, CreateDirectoryIfNotExists(testDir))
}

func TestExpandOutputDir(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"./out/", "out"},
		{"/tmp/videos", "/tmp/videos"},
		{"~/videos", filepath.Join(home, "videos")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dir, err := ExpandOutputDir(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}
}

func TestJoinOutput(t *testing.T) {
	assert.Equal(t, "./Sample_Clip_thumb.jpg", JoinOutput(".", "Sample_Clip_thumb.jpg"))
	assert.Equal(t, "./a.mp4", JoinOutput("", "a.mp4"))
	assert.Equal(t, "/tmp/out/a.mp4", JoinOutput("/tmp/out", "a.mp4"))
	assert.Equal(t, "/tmp/out/a.mp4", JoinOutput("/tmp/out/", "a.mp4"))
}

func TestDerivedFileNamesShareBase(t *testing.T) {
	base := SanitizeFilename("Foo: Bar/Baz")

	assert.Equal(t, "Foo_Bar_Baz.mkv", VideoFileName(base, "mkv"))
	assert.Equal(t, "Foo_Bar_Baz.mp4", VideoFileName(base, ".mp4"))
	assert.Equal(t, "Foo_Bar_Baz_thumb.jpg", ThumbnailFileName(base))
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
}

func TestFindFileWithFallback(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		dir := t.TempDir()
		expected := filepath.Join(dir, "Sample_Clip.mp4")
		writeFile(t, expected)

		found, err := FindFileWithFallback(expected)
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("yt-dlp kept spaces", func(t *testing.T) {
		dir := t.TempDir()
		actual := filepath.Join(dir, "Sample Clip.mp4")
		writeFile(t, actual)

		found, err := FindFileWithFallback(filepath.Join(dir, "Sample_Clip.mp4"))
		require.NoError(t, err)
		assert.Equal(t, actual, found)
	})

	t.Run("yt-dlp full-width replacements", func(t *testing.T) {
		dir := t.TempDir()
		actual := filepath.Join(dir, "Foo： Bar⧸Baz.webm")
		writeFile(t, actual)

		found, err := FindFileWithFallback(filepath.Join(dir, "Foo_Bar_Baz.webm"))
		require.NoError(t, err)
		assert.Equal(t, actual, found)
	})

	t.Run("different extension ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "Sample Clip.webm"))

		_, err := FindFileWithFallback(filepath.Join(dir, "Sample_Clip.mp4"))
		assert.Error(t, err)
	})

	t.Run("thumbnails and partial downloads ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "Sample_Clip_thumb.jpg"))
		writeFile(t, filepath.Join(dir, "Sample Clip.mp4.part"))

		_, err := FindFileWithFallback(filepath.Join(dir, "Other.jpg"))
		assert.Error(t, err)
	})

	t.Run("yt-dlp full-width question mark", func(t *testing.T) {
		dir := t.TempDir()
		actual := filepath.Join(dir, "What？ Now.mp4")
		writeFile(t, actual)

		found, err := FindFileWithFallback(filepath.Join(dir, SanitizeFilename("What? Now")+".mp4"))
		require.NoError(t, err)
		assert.Equal(t, actual, found)
	})

	t.Run("unrelated download not substituted", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "an older-unrelated holiday download.mp4"))
		writeFile(t, filepath.Join(dir, "clip_01.mp4"))

		_, err := FindFileWithFallback(filepath.Join(dir, "What_Now.mp4"))
		assert.Error(t, err)
	})

	t.Run("truncated title", func(t *testing.T) {
		dir := t.TempDir()
		actual := filepath.Join(dir, "A very long title that yt-dlp cut.mp4")
		writeFile(t, actual)

		found, err := FindFileWithFallback(filepath.Join(dir, "A_very_long_title_that_yt-dlp_cut_short.mp4"))
		require.NoError(t, err)
		assert.Equal(t, actual, found)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := FindFileWithFallback("")
		assert.Error(t, err)
	})
}

func TestResolveDownloadedFile_KeepsExpectedWhenMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Some other long video title.mp4"))
	expected := filepath.Join(dir, "Missing.mp4")

	assert.Equal(t, expected, ResolveDownloadedFile(expected))
}
