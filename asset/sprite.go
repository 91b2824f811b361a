package asset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sprite is an immutable multi-line text frame
type Sprite struct {
	name string
	rows [][]rune
	cols int
}

// Parse splits text into sprite rows
// A single trailing newline does not add a row; CRLF line endings are accepted
func Parse(name, text string) (*Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("parse sprite %q: %w", name, ErrEmpty)
	}

	lines := strings.Split(text, "\n")
	s := &Sprite{
		name: name,
		rows: make([][]rune, len(lines)),
	}
	for i, line := range lines {
		s.rows[i] = []rune(line)
		if n := utf8.RuneCountInString(line); n > s.cols {
			s.cols = n
		}
	}
	return s, nil
}

// MustParse is Parse for literals known to be valid
func MustParse(name, text string) *Sprite {
	s, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the asset name the sprite was loaded from
func (s *Sprite) Name() string {
	return s.name
}

// Rows implements render.Frame
func (s *Sprite) Rows() [][]rune {
	return s.rows
}

// Size returns the bounding box: row count and longest row length
func (s *Sprite) Size() (rows, cols int) {
	return len(s.rows), s.cols
}
