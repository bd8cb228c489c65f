package fu

import (
	"go-ml.dev/pkg/iokit"
	"path/filepath"
)

/*
DataPath resolves a course dataset file name.
Absolute paths are returned as is, relative ones are placed into the go-ml cache
*/
func DataPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
