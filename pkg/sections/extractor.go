// Package sections segments raw resume text into canonical structural
// sections, folding arbitrary header phrasings into a fixed vocabulary.
package sections

import (
	"regexp"
	"strings"
)

// Detection records how a canonical section was found. A section detected
// as a structured block carries its trimmed Content; a section only found
// by the whole-document fallback search carries Inline=true and no content.
type Detection struct {
	Content string
	Inline  bool
}

// Detected reports whether the section was found in any form.
func (d Detection) Detected() bool {
	return d.Inline || d.Content != ""
}

// SectionMap maps canonical section names to their detections. Each
// canonical name appears at most once regardless of which synonym matched.
type SectionMap map[string]Detection

// headerMatcher pairs a canonical name with its compiled header pattern.
type headerMatcher struct {
	canonical string
	pattern   *regexp.Regexp
}

//nolint:gochecknoglobals // Compiled once from the registry
var headerMatchers = compileHeaderMatchers()

//nolint:gochecknoglobals // Compiled once from the registry
var fallbackMatchers = compileFallbackMatchers()

// compileHeaderMatchers builds one anchored, case-insensitive pattern per
// canonical section. A line is a header only if its trimmed text equals a
// synonym exactly, with no surrounding words.
func compileHeaderMatchers() (matchers []headerMatcher) {
	matchers = make([]headerMatcher, 0, len(registry))
	for _, entry := range registry {
		quoted := make([]string, 0, len(entry.Synonyms))
		for _, synonym := range entry.Synonyms {
			quoted = append(quoted, regexp.QuoteMeta(synonym))
		}
		pattern := regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(quoted, "|") + `)\s*$`)
		matchers = append(matchers, headerMatcher{canonical: entry.Canonical, pattern: pattern})
	}
	return matchers
}

// compileFallbackMatchers builds word-boundary patterns used by the
// whole-document substring pass.
func compileFallbackMatchers() (matchers []headerMatcher) {
	matchers = make([]headerMatcher, 0, len(registry))
	for _, entry := range registry {
		quoted := make([]string, 0, len(entry.Synonyms))
		for _, synonym := range entry.Synonyms {
			quoted = append(quoted, regexp.QuoteMeta(synonym))
		}
		pattern := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
		matchers = append(matchers, headerMatcher{canonical: entry.Canonical, pattern: pattern})
	}
	return matchers
}

// Extract segments resume text into canonical sections.
//
// Line-based pass: a non-blank line whose trimmed text exactly equals a
// known synonym opens that canonical section; subsequent non-blank,
// non-header lines accumulate as its content. A header with no content
// before the next header (or end of input) is dropped. Fallback pass: any
// canonical section not found as a structured block is searched for as a
// word-boundary substring anywhere in the document and, if found, recorded
// as an inline detection.
func Extract(text string) (result SectionMap) {
	result = SectionMap{}

	currentSection := ""
	var content []string

	commit := func() {
		if currentSection == "" || len(content) == 0 {
			return
		}
		result[currentSection] = Detection{Content: strings.TrimSpace(strings.Join(content, "\n"))}
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		matched := matchHeader(stripped)
		if matched != "" {
			commit()
			currentSection = matched
			content = nil
			continue
		}

		if currentSection != "" {
			content = append(content, line)
		}
	}

	commit()

	// Fallback: sections mentioned in running text but never used as a
	// structured header count as present, not as structure.
	for _, matcher := range fallbackMatchers {
		if _, present := result[matcher.canonical]; present {
			continue
		}
		if matcher.pattern.MatchString(text) {
			result[matcher.canonical] = Detection{Inline: true}
		}
	}

	return result
}

// matchHeader returns the canonical name for a trimmed header line, or
// empty when the line is not a section header. First match in table order
// wins.
func matchHeader(stripped string) (canonical string) {
	for _, matcher := range headerMatchers {
		if matcher.pattern.MatchString(stripped) {
			canonical = matcher.canonical
			return canonical
		}
	}
	return canonical
}
