// Package sanitize strips markup from user-entered text before it is stored.
// Query and keyword text is displayed verbatim by external dashboards, so
// nothing beyond plain text is allowed through.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
