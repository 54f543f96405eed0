package output

import (
	"strconv"
	"strings"

	"captainslog/journal"
	"captainslog/stardate"
)

// ImagePathSeparator joins image paths inside a single tabular cell.
const ImagePathSeparator = ";"

// TabularHeaders are the column names of the csv and excel exports. The
// importer reads the same columns back.
var TabularHeaders = []string{"ID", "Timestamp", "Stardate", "Journal", "Title", "Content", "AudioPath", "ImagePaths", "CreatedAt", "UpdatedAt"}

func tabularRow(entry journal.Entry) []string {
	audio := ""
	if entry.AudioPath != nil {
		audio = *entry.AudioPath
	}
	return []string{
		strconv.FormatInt(entry.ID, 10),
		formatTimestamp(entry.Timestamp),
		stardate.ToStardate(entry.Timestamp).String(),
		entry.Journal,
		entry.TitleOrEmpty(),
		entry.Content,
		audio,
		strings.Join(entry.ImagePaths, ImagePathSeparator),
		formatTimestamp(entry.CreatedAt),
		formatTimestamp(entry.UpdatedAt),
	}
}
