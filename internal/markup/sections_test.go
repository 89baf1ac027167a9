package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAfterFirstH2(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantBefore string
		wantAfter  string
	}{
		{"two h2", "<h2>X</h2>body<h2>Y</h2>more", "<h2>X</h2>body", "<h2>Y</h2>more"},
		{"no headings", "no headings", "no headings", ""},
		{"next is h3", "<p>i</p><h2 id=\"a\">X</h2>b<h3>Y</h3>c", "<p>i</p><h2 id=\"a\">X</h2>b", "<h3>Y</h3>c"},
		{"single h2 keeps whole body", "<h2>X</h2>only", "<h2>X</h2>only", ""},
		{"h3 before first h2 ignored", "<h3>a</h3><h2>X</h2>b<h2>Y</h2>", "<h3>a</h3><h2>X</h2>b", "<h2>Y</h2>"},
		{"h4 does not split", "<h2>X</h2>b<h4>Z</h4>c", "<h2>X</h2>b<h4>Z</h4>c", ""},
		{"case insensitive", "<H2>X</H2>b<H3 class=c>Y</H3>", "<H2>X</H2>b", "<H3 class=c>Y</H3>"},
		{"h2x is not a heading", "<h2x>X<h2>Y</h2>z<h3>W</h3>", "<h2x>X<h2>Y</h2>z", "<h3>W</h3>"},
		{"unterminated first tag", "<h2 class=\"x", "<h2 class=\"x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := SplitAfterFirstH2(tt.in)
			assert.Equal(t, tt.wantBefore, before)
			assert.Equal(t, tt.wantAfter, after)
			assert.Equal(t, tt.in, before+after)
		})
	}
}
