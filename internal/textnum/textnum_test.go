package textnum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no numbers", "no digits here", nil},
		{"single", "I have 5 apples", []string{"5"}},
		{"sentence period", "I have 5.", []string{"5"}},
		{"decimal", "pi is 3.14, e is 2.718", []string{"3.14", "2.718"}},
		{"negative", "it was -12.5 outside", []string{"-12.5"}},
		{"leading dot", "about .5 of it", []string{".5"}},
		{"negative leading dot", "drop of -.25", []string{"-.25"}},
		{"thousands", "$1,250,000 raised", []string{"1,250,000"}},
		{"list commas", "1, 2, 3", []string{"1", "2", "3"}},
		{"glued to letters", "4x4 and v2 and 10km", nil},
		{"exponent", "1e5 is big", nil},
		{"version", "go 1.24.0 and ip 10.0.0.1", nil},
		{"identifier", "var_1 and x_2", nil},
		{"parenthesised", "(42)", []string{"42"}},
		{"hyphen after word", "x-5", []string{"5"}},
		{"unicode neighbours", "ölçü 7 ədəd", []string{"7"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lits := Scan(tt.input)
			var got []string
			for _, l := range lits {
				require.Equal(t, l.Text, tt.input[l.Start:l.End], "offset invariant")
				got = append(got, l.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		want     string
		replaced int
	}{
		{"no numbers", "hello", "hello", 0},
		{"integer", "I have 5 apples.", "I have five apples.", 1},
		{"decimal", "it costs 60.212 units", "it costs sixty and two hundred twelve thousandths units", 1},
		{"negative", "-0.5 degrees", "negative five tenths degrees", 1},
		{"negative zero", "-0.0", "zero", 1},
		{"thousands", "raised $1,250,000", "raised $one million two hundred fifty thousand", 1},
		{"several", "6.2 and 255", "six and two tenths and two hundred fifty-five", 2},
		{"untouched tokens", "v1.2.3 at 10.0.0.1", "v1.2.3 at 10.0.0.1", 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, n := Rewrite(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.replaced, n)
		})
	}
}

func TestRewriteKeepsOversizedLiteral(t *testing.T) {
	t.Parallel()

	huge := strings.Repeat("9", 400)
	got, n := Rewrite("value " + huge + " end")

	assert.Equal(t, "value "+huge+" end", got)
	assert.Zero(t, n)
}

func FuzzRewrite(f *testing.F) {
	f.Add("")
	f.Add("I have 5.")
	f.Add("-.5 1,000 10.0.0.1")
	f.Add("\xff\xfe 12")

	f.Fuzz(func(t *testing.T, s string) {
		for _, l := range Scan(s) {
			if s[l.Start:l.End] != l.Text {
				t.Fatalf("Scan(%q) literal %q does not match offsets [%d:%d]", s, l.Text, l.Start, l.End)
			}
		}
		// Must not panic.
		_, _ = Rewrite(s)
	})
}
