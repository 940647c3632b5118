package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PartPath returns the output path for chunk n (1-based). The first chunk
// keeps the given path; later chunks insert "_partN" before the extension.
func PartPath(base string, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_part%d%s", strings.TrimSuffix(base, ext), n, ext)
}
