package spotlight

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// mdlsDateLayout is the timestamp format mdls prints for date attributes.
const mdlsDateLayout = "2006-01-02 15:04:05 -0700"

// match is one mdfind result path. Attribute reads shell out to mdls on
// demand; nothing is fetched until asked for.
type match struct {
	backend *Backend
	path    string
}

func (m *match) Attribute(name string) (any, bool, error) {
	// The path is the match identity itself; no mdls round trip needed.
	if name == "kMDItemPath" {
		return m.path, true, nil
	}
	out, err := exec.Command(m.backend.mdlsPath(), "-name", name, "-raw", m.path).Output()
	if err != nil {
		return nil, false, commandError("mdls", err)
	}
	return parseRawValue(string(out))
}

func (m *match) AttributeNames() ([]string, error) {
	out, err := exec.Command(m.backend.mdlsPath(), m.path).Output()
	if err != nil {
		return nil, commandError("mdls", err)
	}
	return parseAttributeNames(string(out)), nil
}

// parseRawValue interprets `mdls -raw` output. "(null)" means the index has
// no value; parenthesized output is a list; timestamps and numbers are
// recognized, everything else stays a string.
func parseRawValue(s string) (any, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "(null)" {
		return nil, false, nil
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return parseListBody(s[1 : len(s)-1]), true, nil
	}
	if t, err := time.Parse(mdlsDateLayout, s); err == nil {
		return t, true, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true, nil
	}
	return stripQuotes(s), true, nil
}

func parseListBody(body string) []any {
	var items []any
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" {
			continue
		}
		item, ok, _ := parseRawValue(line)
		if ok {
			items = append(items, item)
		}
	}
	return items
}

func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// parseAttributeNames extracts the populated attribute keys from full mdls
// output. Continuation lines of multi-line list values are indented and
// skipped.
func parseAttributeNames(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == ')' {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		name := strings.TrimSpace(line[:eq])
		if name == "" {
			continue
		}
		// mdls reports unpopulated attributes as (null); they are not
		// part of this item's attribute set.
		if strings.TrimSpace(line[eq+1:]) == "(null)" {
			continue
		}
		names = append(names, name)
	}
	return names
}
