package itemlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"rwsch/internal/activity"
)

// Read decodes JSONL records from r. Blank lines are ignored. The first malformed
// line fails the whole read, since a dropped item would shift the windowed counts.
func Read(r io.Reader) ([]activity.Item, error) {
	var items []activity.Item
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", line, err)
		}
		it, err := rec.ToItem()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, it)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading item log: %w", err)
	}

	// Chronological order, oldest first.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})
	return items, nil
}

// Load reads an item log from path.
func Load(path string) ([]activity.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open item log: %w", err)
	}
	defer file.Close()

	items, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().Str("path", path).Int("count", len(items)).Msg("Loaded items")
	return items, nil
}

// Write encodes items as JSONL records.
func Write(w io.Writer, items []activity.Item) error {
	writer := bufio.NewWriter(w)
	encoder := json.NewEncoder(writer)
	for _, it := range items {
		if err := encoder.Encode(FromItem(it)); err != nil {
			return fmt.Errorf("failed to encode item: %w", err)
		}
	}
	return writer.Flush()
}

// Save writes items to path atomically via a temporary file.
func Save(path string, items []activity.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp item log: %w", err)
	}

	if err := Write(file, items); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename item log: %w", err)
	}

	log.Info().Str("path", path).Int("count", len(items)).Msg("Item log saved")
	return nil
}
