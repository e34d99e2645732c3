// Package tag models the normalized tag entity shared by inquiries and
// articles. Tag names are unique after case folding.
package tag

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var folder = cases.Lower(language.Und)

// Normalize trims surrounding whitespace and case-folds a raw tag name.
// The empty string after normalization means the input was not a usable tag.
func Normalize(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// NormalizeAll normalizes a list of raw names, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeAll(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		n := Normalize(raw)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

type Tag struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewTag(name string) (*Tag, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(normalized) > 50 {
		return nil, fmt.Errorf("tag name exceeds maximum length of 50 characters")
	}

	return &Tag{
		name:      normalized,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTag(id uint, name string, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("tag name is required")
	}

	return &Tag{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint             { return t.id }
func (t *Tag) Name() string         { return t.name }
func (t *Tag) CreatedAt() time.Time { return t.createdAt }

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}
