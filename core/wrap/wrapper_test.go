package wrap

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  []string
	}{
		{"empty", 10, "", nil},
		{"whitespace only", 10, " \n\t ", nil},
		{"fits", 30, "Lorem ipsum dolor sit amet", []string{"Lorem ipsum dolor sit amet"}},
		{"breaks on words", 11, "Lorem ipsum dolor sit amet", []string{"Lorem ipsum", "dolor sit", "amet"}},
		{"long word", 4, "a Pneumonoultramicroscopic b", []string{"a", "Pneumonoultramicroscopic", "b"}},
		{"collapses newlines", 40, "one\n\ntwo   three", []string{"one two three"}},
		{"counts runes", 11, "Kraków Łódź Gdańsk", []string{"Kraków Łódź", "Gdańsk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.width).Lines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNew_DefaultWidth(t *testing.T) {
	if w := New(0); w.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", w.Width, DefaultWidth)
	}
}

func TestFill_RespectsWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range strings.Split(New(0).Fill(text), "\n") {
		if utf8.RuneCountInString(line) > DefaultWidth {
			t.Errorf("line exceeds %d runes: %q", DefaultWidth, line)
		}
	}
}
