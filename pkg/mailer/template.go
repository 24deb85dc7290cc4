package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Template is a parsed template file: frontmatter metadata and markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits template content into YAML frontmatter and markdown body.
// Content without a leading "---" has no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	rest, ok := bytes.CutPrefix(content, frontmatterDelimiter)
	if !ok {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest = bytes.TrimLeft(rest, "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	// The closing delimiter must start a line.
	var front, body []byte
	if b, ok := bytes.CutPrefix(rest, frontmatterDelimiter); ok {
		body = b
	} else {
		front, body, ok = bytes.Cut(rest, append([]byte("\n"), frontmatterDelimiter...))
		if !ok {
			return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
	}

	// One line break after the closing delimiter belongs to it.
	if b, ok := bytes.CutPrefix(body, []byte("\r\n")); ok {
		body = b
	} else {
		body = bytes.TrimPrefix(body, []byte("\n"))
	}

	metadata := map[string]any{}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
