package extract

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

var (
	spacesRe = regexp.MustCompile(`\s+`)
	labelRes sync.Map // label -> *regexp.Regexp
)

// After returns the text following the first case-insensitive occurrence of label.
// Labels starting with an ascii letter or digit match at a word start only, so "Date:" is not found
// inside "Update:". ok is false if label is absent.
func After(text, label string) (rest string, ok bool) {
	loc := foldRe(label).FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[1]:], true
}

// Until cuts text at the earliest case-insensitive occurrence of any of the boundaries.
// Text without any boundary is returned whole.
func Until(text string, boundaries ...string) string {
	if end := earliest(text, boundaries...); end >= 0 {
		return text[:end]
	}
	return text
}

// Section returns the text between start label and the earliest of ends, or the end of text.
// ok is false if start label is absent.
func Section(text, start string, ends ...string) (string, bool) {
	rest, ok := After(text, start)
	if !ok {
		return "", false
	}
	return Until(rest, ends...), true
}

// Groups scans text left to right for repeating groups. Each match of head is returned as its
// submatches plus one trailing element holding the text after the match up to the earliest
// boundary (or end of text). Scanning resumes at that boundary, so a boundary label may start
// the next group.
func Groups(text string, head *regexp.Regexp, boundaries ...string) [][]string {
	var res [][]string
	pos := 0
	for pos < len(text) {
		loc := head.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		group := make([]string, 0, len(loc)/2+1)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				group = append(group, "")
				continue
			}
			group = append(group, text[pos+loc[i]:pos+loc[i+1]])
		}

		tailStart := pos + loc[1]
		tail := text[tailStart:]
		next := len(text)
		if end := earliest(tail, boundaries...); end >= 0 {
			tail = tail[:end]
			next = tailStart + end
		}
		res = append(res, append(group, tail))

		if next <= pos {
			next = pos + 1
		}
		pos = next
	}
	return res
}

// IndexFold is a case-insensitive strings.Index with the same word start rule as After,
// returns byte offset in text or -1
func IndexFold(text, label string) int {
	if label == "" {
		return 0
	}
	loc := foldRe(label).FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// CollapseSpace replaces every whitespace run with a single space and trims the result
func CollapseSpace(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// TrimLeftSpace drops leading whitespace, including blank lines
func TrimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// Atoi parses a non-negative integer, anything unparsable is 0
func Atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// earliest returns the smallest offset of any boundary in text, -1 if none found
func earliest(text string, boundaries ...string) int {
	res := -1
	for _, b := range boundaries {
		if idx := IndexFold(text, b); idx >= 0 && (res < 0 || idx < res) {
			res = idx
		}
	}
	return res
}

// foldRe returns the compiled case-insensitive pattern of label, patterns are compiled once
func foldRe(label string) *regexp.Regexp {
	if re, ok := labelRes.Load(label); ok {
		return re.(*regexp.Regexp)
	}
	expr := `(?i)` + regexp.QuoteMeta(label)
	if r, _ := utf8.DecodeRuneInString(label); r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
		expr = `(?i)\b` + regexp.QuoteMeta(label)
	}
	re, _ := labelRes.LoadOrStore(label, regexp.MustCompile(expr))
	return re.(*regexp.Regexp)
}
