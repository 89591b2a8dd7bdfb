package ocr

import "testing"

func TestCleanDefaults(t *testing.T) {
	opts := DefaultCleanOptions()

	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"'quoted'", "quoted"},
		{`"double"`, "double"},
		{"‘curly’", "curly"},
		{"line one\nline two\n", "line oneline two"},
		{"a\r\nb", "ab"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := opts.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanNormalizesNFC(t *testing.T) {
	opts := CleanOptions{Normalize: true}

	// "é" as 'e' + combining acute accent recomposes to a single rune.
	in := "cafe\u0301"
	got := opts.Clean(in)
	if got != "caf\u00e9" {
		t.Errorf("Clean(%q) = %q, want %q", in, got, "caf\u00e9")
	}
}

func TestCleanZeroValueIsNoop(t *testing.T) {
	var opts CleanOptions
	in := "  'raw'\n"
	if got := opts.Clean(in); got != in {
		t.Errorf("Zero-value Clean(%q) = %q, want input unchanged", in, got)
	}
}

func TestCleanSelectiveSteps(t *testing.T) {
	opts := CleanOptions{TrimSpace: true}
	if got := opts.Clean("  'kept quotes'  "); got != "'kept quotes'" {
		t.Errorf("TrimSpace-only Clean = %q", got)
	}

	opts = CleanOptions{StripNewlines: true}
	if got := opts.Clean("a\nb "); got != "ab " {
		t.Errorf("StripNewlines-only Clean = %q", got)
	}
}
