package linking

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractConcepts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t\n",
			want: []string{},
		},
		{
			name: "proper noun phrases come before single tokens",
			text: "Machine Learning is great for analysis.",
			want: []string{"machine learning", "machine", "learning", "great", "analysis"},
		},
		{
			name: "stopwords and short tokens dropped",
			text: "This is about the database because they should",
			want: []string{"database"},
		},
		{
			name: "duplicates collapse to first occurrence",
			text: "Data Science and later Data Science",
			want: []string{"data science", "data", "science", "later"},
		},
		{
			name: "tokens with digits are not concepts",
			text: "version v2beta3 of the kubernetes rollout",
			want: []string{"version", "kubernetes", "rollout"},
		},
		{
			name: "hyphenated words contribute their parts",
			text: "well-tested rollout",
			want: []string{"tested", "rollout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractConcepts(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractConcepts() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtractConceptsCap(t *testing.T) {
	words := []string{
		"apple", "banana", "cherry", "damson", "elderberry",
		"grape", "guava", "kiwifruit", "lemon", "lychee",
		"mango", "melon", "nectarine", "olive", "papaya",
		"peach", "pear", "plum", "quince", "raspberry",
		"tangerine", "walnut", "apricot", "currant", "durian",
	}
	text := strings.Join(words, " ")

	got := ExtractConcepts(text)
	if len(got) != conceptCap {
		t.Fatalf("expected %d concepts, got %d", conceptCap, len(got))
	}
	if !reflect.DeepEqual(got, words[:conceptCap]) {
		t.Errorf("ExtractConcepts() = %#v, want first %d input words", got, conceptCap)
	}
}

func TestExtractConceptsDeterministic(t *testing.T) {
	text := "The Knowledge Graph links research notes about distributed systems and graph theory."

	first := ExtractConcepts(text)
	second := ExtractConcepts(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %#v vs %#v", first, second)
	}
}
