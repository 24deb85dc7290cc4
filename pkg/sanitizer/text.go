package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once

	blockEnd   = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|table|blockquote)>|<br\s*/?>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

func policy() *bluemonday.Policy {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripHTML removes all markup and decodes entities.
// Script and style contents are dropped.
func StripHTML(s string) string {
	return html.UnescapeString(policy().Sanitize(s))
}

// PlainText converts an HTML body into a plain-text alternative.
// Block-level elements end lines and runs of blank lines collapse to one.
func PlainText(htmlBody string) string {
	withBreaks := blockEnd.ReplaceAllStringFunc(htmlBody, func(tag string) string {
		return tag + "\n"
	})

	lines := strings.Split(StripHTML(withBreaks), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text := strings.Join(lines, "\n")

	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
}
