package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/accordion/internal/model"
)

// JSON-backed item definitions. Single file, human-readable, portable.
// Open state is never written here.

// DefaultFile is the items file looked up in the working directory.
const DefaultFile = "accordion.json"

// Path resolves name against the working directory unless it is absolute.
func Path(name string) (string, error) {
	if name == "" {
		name = DefaultFile
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

// Defaults is the sample content shown when no items file exists.
func Defaults() []model.Item {
	return []model.Item{
		{
			ID:    "item1",
			Title: "What is Bubble Tea?",
			Body:  "Bubble Tea is a Go framework for building terminal apps based on The Elm Architecture.",
		},
		{
			ID:    "item2",
			Title: "What is Lip Gloss?",
			Body:  "Lip Gloss provides style definitions for nice terminal layouts, in the spirit of CSS.",
		},
		{
			ID:    "item3",
			Title: "Why use compound components?",
			Body:  "They offer a flexible API and let the parent control layout and structure.",
		},
	}
}

// Load reads items from path. A missing file yields Defaults.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save writes items to path, replacing its contents.
func Save(path string, items []model.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
