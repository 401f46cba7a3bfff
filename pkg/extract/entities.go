package extract

import "strings"

// entities are decoded in this order, &amp; goes first so "&amp;lt;" ends as "<"
var entities = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&#x27;", "'"},
}

// DecodeEntities replaces the fixed set of escaped entities with literal characters.
// Decoding repeats until nothing is left to decode, so the result is stable:
// DecodeEntities(DecodeEntities(s)) == DecodeEntities(s).
func DecodeEntities(s string) string {
	for {
		decoded := decodeOnce(s)
		if decoded == s {
			return decoded
		}
		s = decoded
	}
}

func decodeOnce(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for _, e := range entities {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}
