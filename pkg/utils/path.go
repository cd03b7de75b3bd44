package utils

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// SanitizeFileName turns a client supplied filename into a safe, readable
// name: the base is slugified and the extension lower-cased.
func SanitizeFileName(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	if ext == "." {
		ext = ""
	}
	return base + ext
}

// StoragePath builds an object key like "banners/<id><ext>".
func StoragePath(folder, id, ext string) string {
	return path.Join(folder, id+strings.ToLower(ext))
}
