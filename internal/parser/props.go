package parser

import (
	"strings"
)

// properties is the content of a simfile split into #KEY:value statements.
// NOTES statements keep their order in notes instead.
type properties struct {
	values map[string]string
	notes  []string
}

func (p *properties) get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// stripComments trims every line and drops blank and comment lines.
func stripComments(content string) string {
	content = strings.ReplaceAll(content, "\r", "")
	lines := []string{}
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n")
}

// readProperties splits content that has already been through
// stripComments.
func readProperties(content string) *properties {
	p := &properties{values: map[string]string{}}
	for _, statement := range strings.Split(content, ";") {
		parts := strings.SplitN(strings.TrimSpace(statement), ":", 2)
		if len(parts) < 2 {
			continue
		}
		key := strings.Trim(parts[0], "#")
		if key == "NOTES" {
			p.notes = append(p.notes, parts[1])
		} else {
			p.values[key] = parts[1]
		}
	}
	return p
}

// splitMeasures turns note data into measures of grid rows. Empty measures
// are kept, except after a trailing comma.
func splitMeasures(data string) [][]string {
	measures := [][]string{}
	for _, block := range strings.Split(data, ",") {
		rows := []string{}
		for _, l := range strings.Split(block, "\n") {
			if i := strings.Index(l, "//"); i >= 0 {
				l = l[:i]
			}
			l = strings.TrimSpace(l)
			if l == "" {
				continue
			}
			rows = append(rows, l)
		}
		measures = append(measures, rows)
	}
	// A comma after the last measure
	if n := len(measures); n > 1 && len(measures[n-1]) == 0 {
		measures = measures[:n-1]
	}
	return measures
}
