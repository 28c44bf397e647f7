// Package prompt parses and renders the guest chat prompt template.
//
// Placeholders are written as {name}. A doubled brace ({{ or }}) renders as a
// single literal brace.
package prompt

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

type segment struct {
	text  string
	field string
}

// Template is a parsed prompt. It is immutable and safe for concurrent use.
type Template struct {
	segments []segment
	fields   []string
}

// Load reads and parses the template file at path.
func Load(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt template: %w", err)
	}
	return Parse(string(raw))
}

// Parse splits text into literal runs and placeholders.
func Parse(text string) (*Template, error) {
	t := &Template{}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			name := text[i+1 : i+1+end]
			if !validName(name) {
				return nil, fmt.Errorf("invalid placeholder %q at offset %d", name, i)
			}
			flush()
			t.segments = append(t.segments, segment{field: name})
			if !slices.Contains(t.fields, name) {
				t.fields = append(t.fields, name)
			}
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("single '}' at offset %d", i)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Fields returns the placeholder names in first-seen order.
func (t *Template) Fields() []string {
	return slices.Clone(t.fields)
}

// Validate fails if the template references a placeholder outside allowed.
func (t *Template) Validate(allowed ...string) error {
	for _, f := range t.fields {
		if !slices.Contains(allowed, f) {
			return fmt.Errorf("unknown placeholder {%s}", f)
		}
	}
	return nil
}

// Render substitutes values in a single pass; substituted text is never
// scanned for placeholders.
func (t *Template) Render(values map[string]string) (string, error) {
	var sb strings.Builder
	for _, seg := range t.segments {
		if seg.field == "" {
			sb.WriteString(seg.text)
			continue
		}
		v, ok := values[seg.field]
		if !ok {
			return "", fmt.Errorf("missing value for placeholder {%s}", seg.field)
		}
		sb.WriteString(v)
	}
	return sb.String(), nil
}
