package output

import (
	"encoding/json"
	"fmt"
	"time"

	"captainslog/journal"
)

type JSONRenderer struct{}

type jsonDocument struct {
	Version    string      `json:"version"`
	ExportedAt string      `json:"exported_at"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID         int64    `json:"id"`
	Timestamp  string   `json:"timestamp"`
	Title      *string  `json:"title"`
	Content    string   `json:"content"`
	AudioPath  *string  `json:"audio_path"`
	ImagePaths []string `json:"image_paths"`
	Journal    string   `json:"journal"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func (r *JSONRenderer) Render(entries []journal.Entry, opts RenderOptions) ([]byte, error) {
	doc := jsonDocument{
		Version:    opts.Version,
		ExportedAt: formatTimestamp(opts.GeneratedAt),
		Entries:    make([]jsonEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		images := entry.ImagePaths
		if images == nil {
			images = []string{}
		}
		doc.Entries = append(doc.Entries, jsonEntry{
			ID:         entry.ID,
			Timestamp:  formatTimestamp(entry.Timestamp),
			Title:      entry.Title,
			Content:    entry.Content,
			AudioPath:  entry.AudioPath,
			ImagePaths: images,
			Journal:    entry.Journal,
			CreatedAt:  formatTimestamp(entry.CreatedAt),
			UpdatedAt:  formatTimestamp(entry.UpdatedAt),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return append(data, '\n'), nil
}

func (r *JSONRenderer) Extension() string {
	return "json"
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
