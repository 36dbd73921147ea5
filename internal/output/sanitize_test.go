package output

import (
	"fmt"
	"testing"
	"unicode"
)

func TestSanitize(t *testing.T) {
	for name, tc := range map[string]struct {
		in, want string
	}{
		"plain":      {in: "Paste Grinding", want: "Paste Grinding"},
		"escape":     {in: "hi\x1b[31mred", want: `hi\x1b[31mred`},
		"nul":        {in: "nul:\x00", want: `nul:\x00`},
		"invalid":    {in: "bad:\xff", want: `bad:\xff`},
		"whitespace": {in: "a\tb\nc", want: "a\tb\nc"},
		"line sep":   {in: "x\u0085y", want: `x\x85y`},
		"unicode ok": {in: "Öfen ✓", want: "Öfen ✓"},
	} {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func FuzzEscapeRune(f *testing.F) {
	for _, r := range []uint32{0x00, 0x1b, 0x7f, 0x80, 0xff, 0x100, 0x20ac, 0xffff, 0x10000, 0x10ffff} {
		f.Add(r)
	}

	f.Fuzz(func(t *testing.T, raw uint32) {
		r := rune(raw % (unicode.MaxRune + 1))
		got := escapeRune(r)

		var want string
		switch {
		case r <= 0xFF:
			want = fmt.Sprintf(`\x%02x`, r)
		case r <= 0xFFFF:
			want = fmt.Sprintf(`\u%04x`, r)
		default:
			want = fmt.Sprintf(`\U%08x`, r)
		}
		if got != want {
			t.Fatalf("escapeRune(%#x) = %q, want %q", r, got, want)
		}
		for i := 0; i < len(got); i++ {
			if got[i] >= 0x80 {
				t.Fatalf("escapeRune(%#x) produced non-ASCII byte 0x%02x", r, got[i])
			}
		}
	})
}

func FuzzSanitizeLeavesNoControls(f *testing.F) {
	f.Add("Machine 1")
	f.Add("\x1b]0;pwned\x07")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		for _, r := range Sanitize(s) {
			if r != '\n' && r != '\t' && unicode.IsControl(r) {
				t.Fatalf("Sanitize(%q) kept control rune %#x", s, r)
			}
		}
	})
}

func TestPlainText(t *testing.T) {
	got := PlainText("<b>Machine 1</b><br>Uptime: 88%<br>Downtime: 12%")
	if want := "Machine 1 | Uptime: 88% | Downtime: 12%"; got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
	if got := PlainText("<br><b>Current Lot: 7</b>"); got != "Current Lot: 7" {
		t.Fatalf("PlainText = %q", got)
	}
}
