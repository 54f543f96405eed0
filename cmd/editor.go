package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"captainslog/internal/frontmatter"
)

// editDocument writes doc to a temporary file, opens it in editor and parses
// the saved buffer back.
func editDocument(editor string, doc frontmatter.Document) (frontmatter.Document, error) {
	data, err := frontmatter.Format(doc)
	if err != nil {
		return frontmatter.Document{}, err
	}

	path := editorTempPath(os.TempDir())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return frontmatter.Document{}, fmt.Errorf("write editor file: %w", err)
	}
	defer os.Remove(path)

	editorCommand, err := buildEditorCommand(editor, path)
	if err != nil {
		return frontmatter.Document{}, err
	}
	editorCommand.Stdin = os.Stdin
	editorCommand.Stdout = os.Stdout
	editorCommand.Stderr = os.Stderr
	if err := editorCommand.Run(); err != nil {
		return frontmatter.Document{}, fmt.Errorf("opening editor failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return frontmatter.Document{}, fmt.Errorf("reading edited entry failed: %w", err)
	}
	parsed, err := frontmatter.Parse(edited)
	if err != nil {
		return frontmatter.Document{}, fmt.Errorf("edited entry is invalid: %w", err)
	}
	return parsed, nil
}

func editorTempPath(dir string) string {
	return filepath.Join(dir, "captainslog-"+uuid.NewString()+".md")
}
