package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/mitchellh/go-homedir"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Names may differ in length by this much when one is a truncation of the other
const MaxNameDifference = 10

// Derived file name parts
const (
	ThumbnailSuffix    = "_thumb"
	ThumbnailExtension = ".jpg"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ExpandOutputDir expands a leading ~ and cleans the directory, keeping "." for the current dir
func ExpandOutputDir(dir string) (string, error) {
	if dir == "" {
		return ".", nil
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand output directory %s: %w", dir, err)
	}
	return filepath.Clean(expanded), nil
}

// JoinOutput joins a file name onto the output directory. Unlike filepath.Join it
// keeps a leading "./" so relative paths print the way the user passed them.
func JoinOutput(dir, name string) string {
	if dir == "" {
		dir = "."
	}
	sep := string(filepath.Separator)
	return strings.TrimSuffix(dir, sep) + sep + name
}

// VideoFileName returns the expected name of the downloaded video
func VideoFileName(baseName, ext string) string {
	return baseName + "." + strings.TrimPrefix(ext, ".")
}

// ThumbnailFileName returns the name of the thumbnail derived from the same base
func ThumbnailFileName(baseName string) string {
	return baseName + ThumbnailSuffix + ThumbnailExtension
}

// ResolveDownloadedFile returns the path of the file yt-dlp wrote for expectedPath.
// yt-dlp sanitizes titles with its own rules, so when the expected file is missing a
// similarly named file with the same extension is looked up. Unrelated files are
// never substituted; the expected path is returned unchanged if nothing matches.
func ResolveDownloadedFile(expectedPath string) string {
	found, err := FindFileWithFallback(expectedPath)
	if err != nil {
		return expectedPath
	}
	return found
}

// FindFileWithFallback tries to find a file by its original path, and if not found,
// searches the same directory for a file whose name differs only in the characters
// yt-dlp and SanitizeFilename replace differently
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if _, err := os.Stat(filePath); err == nil {
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	originalName := filepath.Base(filePath)
	originalExt := filepath.Ext(originalName)
	baseName := normalizeName(strings.TrimSuffix(originalName, originalExt))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		entryName := entry.Name()
		entryExt := filepath.Ext(entryName)
		entryBase := strings.TrimSuffix(entryName, entryExt)

		if entryExt != originalExt || strings.HasSuffix(entryBase, ThumbnailSuffix) {
			continue
		}

		if isSimilarFileName(normalizeName(entryBase), baseName) {
			candidates = append(candidates, filepath.Join(dir, entryName))
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("file not found: %s", filePath)
	}

	sort.Strings(candidates)
	return candidates[0], nil
}

// normalizeName folds the separators yt-dlp and SanitizeFilename disagree on,
// including the full-width characters yt-dlp substitutes for unsafe ones
func normalizeName(name string) string {
	folded := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(UnsafeFilenameChars, r) {
			return '_'
		}
		switch r {
		case '-', '＂', '＊', '：', '＜', '＞', '？', '｜', '⧸', '⧹':
			return '_'
		}
		return r
	}, name))
	for strings.Contains(folded, "__") {
		folded = strings.ReplaceAll(folded, "__", "_")
	}
	return folded
}

// isSimilarFileName checks if two file names are similar enough to be considered the same file
func isSimilarFileName(name1, name2 string) bool {
	clean1 := strings.Trim(name1, "_.")
	clean2 := strings.Trim(name2, "_.")

	if clean1 == "" || clean2 == "" {
		return false
	}
	if clean1 == clean2 {
		return true
	}

	// truncated names
	if strings.HasPrefix(clean1, clean2) || strings.HasPrefix(clean2, clean1) {
		diff := len(clean1) - len(clean2)
		if diff < 0 {
			diff = -diff
		}
		return diff <= MaxNameDifference
	}

	return false
}
