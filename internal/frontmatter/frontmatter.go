// Package frontmatter reads and writes the editor buffer used by new and
// edit: a YAML header carrying the journal and timestamp, followed by an
// optional "# Title" line and the entry body.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var (
	ErrMissingFrontmatter = errors.New("no frontmatter found, entry must start with ---")
	ErrUnterminated       = errors.New("frontmatter closing delimiter --- not found")
)

type Metadata struct {
	Journal   string    `yaml:"journal"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Document is a parsed editor buffer.
type Document struct {
	Metadata Metadata
	Title    string
	Content  string
}

// Format renders doc into an editor buffer.
func Format(doc Document) ([]byte, error) {
	meta := doc.Metadata
	meta.Timestamp = meta.Timestamp.UTC()
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	buf.Write(header)
	buf.WriteString(delimiter + "\n\n")
	if title := strings.TrimSpace(doc.Title); title != "" {
		buf.WriteString("# " + title + "\n\n")
	}
	buf.WriteString(doc.Content)
	if !strings.HasSuffix(doc.Content, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Parse splits an editor buffer into metadata, title and content. The title
// is taken from a leading "# " line of the body.
func Parse(data []byte) (Document, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return Document{}, ErrMissingFrontmatter
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return Document{}, ErrUnterminated
	}

	var doc Document
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:closing], "\n")), &doc.Metadata); err != nil {
		return Document{}, fmt.Errorf("parse frontmatter yaml: %w", err)
	}
	if strings.TrimSpace(doc.Metadata.Journal) == "" {
		return Document{}, fmt.Errorf("parse frontmatter: journal is required")
	}
	if doc.Metadata.Timestamp.IsZero() {
		return Document{}, fmt.Errorf("parse frontmatter: timestamp is required")
	}
	doc.Metadata.Journal = strings.TrimSpace(doc.Metadata.Journal)
	doc.Metadata.Timestamp = doc.Metadata.Timestamp.UTC()

	doc.Title, doc.Content = SplitTitle(strings.Join(lines[closing+1:], "\n"))
	return doc, nil
}

// SplitTitle separates a leading "# Title" line from body. Blank lines around
// the title are dropped.
func SplitTitle(body string) (title, content string) {
	trimmed := strings.TrimLeft(body, "\n")
	first, rest, _ := strings.Cut(trimmed, "\n")
	if strings.HasPrefix(first, "# ") {
		return strings.TrimSpace(strings.TrimPrefix(first, "# ")), strings.TrimSpace(rest)
	}
	return "", strings.TrimSpace(trimmed)
}
