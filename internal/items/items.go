// Package items resolves the carousel's content source into an explicit
// item list.
package items

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carousel/internal/domain"
)

// ErrNoItems is returned when no source produced any item
var ErrNoItems = errors.New("no carousel items")

// FromFiles reads one item per file. Directories contribute their regular
// files in name order; hidden entries are skipped.
func FromFiles(paths []string) ([]domain.Item, error) {
	var out []domain.Item
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}

		if !info.IsDir() {
			item, err := fromFile(p)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			item, err := fromFile(filepath.Join(p, entry.Name()))
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func fromFile(path string) (domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to read item %s: %w", path, err)
	}
	return domain.Item{
		Title: filepath.Base(path),
		Body:  strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
	}, nil
}

// Resolve picks the content source: files on the command line win over
// items listed in the config.
func Resolve(configured []domain.Item, paths []string) ([]domain.Item, error) {
	if len(paths) > 0 {
		list, err := FromFiles(paths)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoItems, strings.Join(paths, ", "))
		}
		return list, nil
	}
	if len(configured) == 0 {
		return nil, ErrNoItems
	}
	return configured, nil
}
