package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Entry is one artist row from a catalog export.
type Entry struct {
	Name string
	Tags string
}

// ParseCSV reads a catalog export with an artist_name and artist_tags header.
// Column order is free; extra columns are ignored. Rows with a blank name or
// blank tags are skipped. Duplicate names (case-insensitive) collapse to the
// last occurrence, matching upsert semantics downstream.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("catalog: reading header: %w", err)
	}

	nameCol, tagsCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "artist_name":
			nameCol = i
		case "artist_tags":
			tagsCol = i
		}
	}
	if nameCol < 0 || tagsCol < 0 {
		return nil, fmt.Errorf("catalog: header must contain artist_name and artist_tags, got %v", header)
	}

	var entries []Entry
	position := make(map[string]int)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: reading row: %w", err)
		}
		if nameCol >= len(record) || tagsCol >= len(record) {
			continue
		}

		name := strings.TrimSpace(record[nameCol])
		tags := strings.TrimSpace(record[tagsCol])
		if name == "" || tags == "" {
			continue
		}

		key := strings.ToLower(name)
		if i, seen := position[key]; seen {
			entries[i] = Entry{Name: name, Tags: tags}
			continue
		}
		position[key] = len(entries)
		entries = append(entries, Entry{Name: name, Tags: tags})
	}

	return entries, nil
}
