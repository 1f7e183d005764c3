package utils

import (
	"path/filepath"
	"strings"
)

// OutputExt is the extension given to translated scripts.
const OutputExt = ".lua"

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// DefaultOutputPath returns inputPath with its extension replaced by OutputExt.
// A path that already ends in OutputExt gets OutputExt appended so the input
// is never overwritten.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	if ext == OutputExt {
		return inputPath + OutputExt
	}
	return strings.TrimSuffix(inputPath, ext) + OutputExt
}
