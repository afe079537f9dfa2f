package text

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a raw description for wrapping. Recognised inline markup
// such as <i> or <sub> is removed, entities are decoded, the text is
// NFC-normalised and whitespace runs (including line breaks) collapse to
// single spaces. Anything that only looks like markup, such as "w<wL", is
// kept as written.
func Normalize(s string) string {
	if strings.ContainsAny(s, "<&") {
		s = stripMarkup(s)
	}
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// blockTags separate words even when the source has no whitespace around them.
var blockTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "tr": true, "td": true,
}

// inlineTags are dropped without a separator.
var inlineTags = map[string]bool{
	"i": true, "b": true, "u": true, "em": true, "strong": true,
	"sub": true, "sup": true, "span": true, "small": true,
}

func stripMarkup(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	consumed := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return s
			}
			// an unterminated "tag" at the end is plain text
			if consumed < len(s) {
				b.WriteString(html.UnescapeString(s[consumed:]))
			}
			return b.String()
		}

		raw := z.Raw()
		consumed += len(raw)

		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch {
			case blockTags[string(name)]:
				b.WriteByte(' ')
			case inlineTags[string(name)]:
			default:
				b.Write(raw)
			}
		default:
			b.Write(raw)
		}
	}
}
