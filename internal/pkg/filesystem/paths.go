// Package filesystem holds small path helpers shared by the command
// hand-off layer: idempotent directory creation and collision-free
// file path allocation.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDirectory creates the directory recursively with the given
// mode. It succeeds silently when the directory already exists; any
// other failure propagates to the caller.
func EnsureDirectory(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// EnsureUniqueFilePath returns basePath if nothing occupies it,
// otherwise the first absent candidate among dir/name-1.ext,
// dir/name-2.ext, and so on. Not safe against concurrent allocation
// by other processes targeting the same base name; callers allocate
// sequentially from a single place.
func EnsureUniqueFilePath(basePath string) string {
	if !pathExists(basePath) {
		return basePath
	}
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(basePath, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !pathExists(candidate) {
			return candidate
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
