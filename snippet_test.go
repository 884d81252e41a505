package tinysearch

import (
	"fmt"
	"strings"
	"testing"
)

func numberedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}
	return words
}

func TestSnippetGenerator_WindowPlacement(t *testing.T) {
	tests := []struct {
		name         string
		totalWords   int
		matchIndex   int
		wantStart    int
		wantLen      int
		wantEllipsis bool
	}{
		{
			name:         "match deep in a long document truncates",
			totalWords:   50,
			matchIndex:   25,
			wantStart:    15,
			wantLen:      30,
			wantEllipsis: true,
		},
		{
			name:         "window reaching the end has no ellipsis",
			totalWords:   40,
			matchIndex:   25,
			wantStart:    15,
			wantLen:      25,
			wantEllipsis: false,
		},
		{
			name:         "match near the front clamps start to zero",
			totalWords:   50,
			matchIndex:   3,
			wantStart:    0,
			wantLen:      30,
			wantEllipsis: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := numberedWords(tt.totalWords)
			words[tt.matchIndex] = "needle"
			content := strings.Join(words, " ")

			got := NewSnippetGenerator().Generate(content, []string{"needle"})

			want := strings.Join(words[tt.wantStart:tt.wantStart+tt.wantLen], " ")
			want = strings.Replace(want, "needle", "<em>needle</em>", 1)
			if tt.wantEllipsis {
				want += "..."
			}
			if got != want {
				t.Errorf("Generate() = %q, want %q", got, want)
			}
		})
	}
}

func TestSnippetGenerator_NoMatchStartsAtBeginning(t *testing.T) {
	words := numberedWords(50)
	content := strings.Join(words, " ")

	got := NewSnippetGenerator().Generate(content, []string{"absent"})

	want := strings.Join(words[:30], " ") + "..."
	if got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestSnippetGenerator_Highlighting(t *testing.T) {
	tests := []struct {
		content string
		terms   []string
		want    string
	}{
		{
			// case-insensitive whole-word matches, punctuation attached
			content: "The Cat sat. A cat!",
			terms:   []string{"cat"},
			want:    "The <em>Cat</em> sat. A <em>cat</em>!",
		},
		{
			// no partial-word highlighting
			content: "concatenate cats and a cat",
			terms:   []string{"cat"},
			want:    "concatenate cats and a <em>cat</em>",
		},
		{
			content: "dog chases bird",
			terms:   []string{"dog", "bird"},
			want:    "<em>dog</em> chases <em>bird</em>",
		},
		{
			// repeated query terms must not nest markup
			content: "cat and dog",
			terms:   []string{"cat", "cat"},
			want:    "<em>cat</em> and dog",
		},
		{
			content: "",
			terms:   []string{"cat"},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("content = %q, terms = %v", tt.content, tt.terms), func(t *testing.T) {
			if got := NewSnippetGenerator().Generate(tt.content, tt.terms); got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}
