// Package extract provides label-anchored text extraction primitives shared by the feed,
// bill and member parsers. Nothing here fails: a label that can't be found yields an empty
// result. All functions are pure and safe for concurrent use.
package extract

import (
	"strings"
)

// Field returns the trimmed body of the first <label>...</label> element in text.
// The CDATA form <label><![CDATA[...]]></label> takes precedence over the plain form
// because its body may contain characters that look like markup.
func Field(text, label string) string {
	open, cdataOpen := "<"+label+">", "<"+label+"><![CDATA["
	if body, ok := between(text, cdataOpen, "]]></"+label+">"); ok {
		return strings.TrimSpace(body)
	}
	if body, ok := between(text, open, "</"+label+">"); ok {
		return strings.TrimSpace(body)
	}
	return ""
}

// Blocks returns bodies of all <tag>...</tag> elements in document order.
// Bodies are returned as-is, not trimmed.
func Blocks(text, tag string) []string {
	open, closing := "<"+tag+">", "</"+tag+">"
	var res []string
	for {
		start := strings.Index(text, open)
		if start < 0 {
			return res
		}
		rest := text[start+len(open):]
		end := strings.Index(rest, closing)
		if end < 0 {
			return res
		}
		res = append(res, rest[:end])
		text = rest[end+len(closing):]
	}
}

// between returns text between the first occurrence of open and the first following close
func between(text, open, closing string) (string, bool) {
	start := strings.Index(text, open)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(open):]
	end := strings.Index(rest, closing)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
