package assessment

import (
	"strings"
)

// ParsedAssessment maps each canonical section key to the content the model
// produced for it. Sections the model never mentioned stay as empty strings;
// an empty value means "the model did not produce this field", not an error.
type ParsedAssessment struct {
	content map[string]string
}

// Parse scans the raw completion line by line and accumulates content under
// the section whose label most recently opened. It never fails: lines before
// the first recognized label are dropped, and malformed output simply leaves
// sections empty.
func Parse(rawText string) ParsedAssessment {
	content := make(map[string]string, len(Sections))
	for _, def := range Sections {
		content[def.Key] = ""
	}

	var current string
	for _, line := range strings.Split(rawText, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		if key, ok := matchSection(clean); ok {
			current = key
			// Content on the label line itself comes after the first colon
			// of the original (non-normalized) line.
			if idx := strings.Index(clean, ":"); idx >= 0 {
				if part := strings.TrimSpace(clean[idx+1:]); part != "" {
					content[current] += part + " "
				}
			}
			continue
		}

		if current != "" {
			content[current] += clean + " "
		}
	}

	return ParsedAssessment{content: content}
}

// matchSection reports which section the line opens, if any. A line opens a
// section when its normalized form starts with one of the section's labels
// in any language. The longest matching label wins, so labels sharing a
// prefix across sections cannot shadow each other.
func matchSection(line string) (string, bool) {
	norm := normalizeLine(line)

	var matched string
	longest := 0
	for _, def := range Sections {
		for _, label := range def.Labels {
			keyword := strings.ToLower(label)
			if len(keyword) > longest && strings.HasPrefix(norm, keyword) {
				matched = def.Key
				longest = len(keyword)
			}
		}
	}
	return matched, longest > 0
}

// normalizeLine strips emphasis markers and case so "**Task Response:**"
// matches the "Task Response" label.
func normalizeLine(line string) string {
	norm := strings.NewReplacer("*", "", "-", "", "#", "").Replace(line)
	return strings.ToLower(strings.TrimSpace(norm))
}

// Raw returns the accumulated content for key exactly as parsed, including
// the trailing space appended after each accumulated line.
func (a ParsedAssessment) Raw(key string) string {
	return a.content[key]
}

// Section returns the content for key cleaned for display: surrounding
// whitespace and leading emphasis or punctuation markers removed.
func (a ParsedAssessment) Section(key string) string {
	content := strings.TrimSpace(a.content[key])
	content = strings.TrimLeft(content, "*-: ")
	return strings.TrimSpace(content)
}

// IsEmpty reports whether no section received any content, which is what a
// failed or empty completion degrades to.
func (a ParsedAssessment) IsEmpty() bool {
	for _, content := range a.content {
		if content != "" {
			return false
		}
	}
	return true
}
