package tinysearch

import (
	"fmt"
	"reflect"
	"testing"
)

func TestStandardTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected TokenStream
	}{
		{
			text:     "quick brown fox",
			expected: TokenStream{Tokens: []Token{{Term: "quick"}, {Term: "brown"}, {Term: "fox"}}},
		},
		{
			text:     "quick-brown, fox!",
			expected: TokenStream{Tokens: []Token{{Term: "quick"}, {Term: "brown"}, {Term: "fox"}}},
		},
		{
			// underscore is part of the term alphabet
			text:     "snake_case stays whole",
			expected: TokenStream{Tokens: []Token{{Term: "snake_case"}, {Term: "stays"}, {Term: "whole"}}},
		},
		{
			text:     "  ",
			expected: TokenStream{Tokens: []Token{}},
		},
		{
			text:     "v2 engine",
			expected: TokenStream{Tokens: []Token{{Term: "v2"}, {Term: "engine"}}},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			tr := NewStandardTokenizer()
			if got := tr.Tokenize(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("StandardTokenizer.Tokenize() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
