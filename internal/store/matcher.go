package store

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
)

// Matcher decides which files are images.
type Matcher struct {
	globs         []glob.Glob
	detectContent bool
	showHidden    bool
}

// NewMatcher compiles case-insensitive glob patterns such as
// "*.{jpg,png}".
func NewMatcher(patterns []string, detectContent, showHidden bool) (*Matcher, error) {
	m := &Matcher{detectContent: detectContent, showHidden: showHidden}
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid image pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// MatchName reports whether name matches a pattern and passes the hidden
// file rule.
func (m *Matcher) MatchName(name string) bool {
	if !m.showHidden && strings.HasPrefix(name, ".") {
		return false
	}
	lower := strings.ToLower(name)
	for _, g := range m.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// Match reports whether the file at path is an image: by name, or by
// content when content detection is on.
func (m *Matcher) Match(path, name string) bool {
	if m.MatchName(name) {
		return true
	}
	if !m.detectContent || (!m.showHidden && strings.HasPrefix(name, ".")) {
		return false
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt.String(), "image/")
}
