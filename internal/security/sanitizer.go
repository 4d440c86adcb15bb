package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeContent strips every HTML tag from user-authored text so a post
// or comment cannot smuggle script into other users' pages.
func SanitizeContent(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return htmlPolicy.Sanitize(input)
}

// AllowedImageExt reports whether the filename carries an accepted image
// extension.
func AllowedImageExt(filename string) bool {
	name := strings.ToLower(filename)
	for _, ext := range []string{".jpg", ".jpeg", ".png"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
