package pattern

import "testing"

func TestMatch(t *testing.T) {
	text := "alpha=1\nbeta=22\ngamma=333"

	tests := []struct {
		name   string
		expr   string
		opts   []Option
		want   string
		wantOK bool
	}{
		{"first match", `\w+=\d+`, nil, "alpha=1", true},
		{"second occurrence", `\w+=\d+`, []Option{WithOccurrence(1)}, "beta=22", true},
		{"missing occurrence", `\w+=\d+`, []Option{WithOccurrence(5)}, "", false},
		{"first group", `(\w+)=(\d+)`, []Option{WithGroup(0)}, "alpha", true},
		{"second group of third occurrence", `(\w+)=(\d+)`, []Option{WithGroup(1), WithOccurrence(2)}, "333", true},
		{"absent group", `(\w+)=\d+`, []Option{WithGroup(3)}, "", false},
		{"multiline anchors", `^beta.*$`, nil, "beta=22", true},
		{"case sensitive by default", `ALPHA`, nil, "", false},
		{"ignore case", `ALPHA`, []Option{IgnoreCase()}, "alpha", true},
		{"no match", `delta`, nil, "", false},
		{"zero length capture", `alpha=()`, []Option{WithGroup(0)}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := Match(tc.expr, text, tc.opts...)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Match() = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMatchNonParticipatingGroup(t *testing.T) {
	got, ok, err := Match(`a(x)?b`, "ab", WithGroup(0))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("expected no value for unmatched optional group, got %q", got)
	}
}

func TestMatchInvalidPattern(t *testing.T) {
	if _, _, err := Match(`(`, "text"); err == nil {
		t.Error("expected compile error for invalid pattern")
	}
}

func TestMatches(t *testing.T) {
	ok, err := Matches(`.*\.py$`, "pkg/sub/mod.py")
	if err != nil || !ok {
		t.Errorf("Matches() = %v, %v; want true, nil", ok, err)
	}
	ok, _ = Matches(`.*\.py$`, "pkg/readme.md")
	if ok {
		t.Error("expected readme.md not to match")
	}
}
