package util

import (
	"reflect"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain utf8",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "contains null byte",
			input: "hel\x00lo",
			want:  "hello",
		},
		{
			name:  "contains invalid utf8",
			input: string([]byte{'a', 0xff, 'b'}),
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeText(tt.input)
			if got != tt.want {
				t.Fatalf("unexpected sanitized value: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string(nil),
		},
		{
			name: "punctuation dropped",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "hyphen splits words",
			text: "quick follow-up",
			want: []string{"quick", "follow", "up"},
		},
		{
			name: "digits kept",
			text: "release 2026 notes",
			want: []string{"release", "2026", "notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty input",
			text: "",
			want: 0,
		},
		{
			name: "sentence",
			text: "one two three four five.",
			want: 5,
		},
		{
			name: "only punctuation",
			text: "... --- !!!",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCount(tt.text)
			if got != tt.want {
				t.Errorf("WordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		end    int
		radius int
		want   string
	}{
		{
			name:   "middle span is marked on both sides",
			text:   "abcdefghij",
			start:  4,
			end:    6,
			radius: 2,
			want:   "...cdefgh...",
		},
		{
			name:   "span at start",
			text:   "abcdefghij",
			start:  0,
			end:    2,
			radius: 2,
			want:   "abcd...",
		},
		{
			name:   "radius covers everything",
			text:   "hello world",
			start:  0,
			end:    0,
			radius: 120,
			want:   "hello world",
		},
		{
			name:   "out of range span is clamped",
			text:   "short",
			start:  -3,
			end:    99,
			radius: 10,
			want:   "short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.text, tt.start, tt.end, tt.radius)
			if got != tt.want {
				t.Errorf("Excerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}
