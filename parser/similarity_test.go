package parser

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"vegitarian", "vegetarian", 1},
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"dairy", "dairy", 100},
		{"", "", 100},
		{"vegitarian", "vegetarian", 90},
		{"abc", "xyz", 0},
		{"dary", "dairy", 80},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("Similarity(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilaritySymmetricEnoughForThresholds(t *testing.T) {
	// The score must be deterministic and order-independent, since the
	// parser compares it against a fixed threshold.
	pairs := [][2]string{{"glutin", "gluten"}, {"peenut", "peanut"}, {"fsh", "fish"}}
	for _, pair := range pairs {
		if Similarity(pair[0], pair[1]) != Similarity(pair[1], pair[0]) {
			t.Errorf("Similarity(%q, %q) is not symmetric", pair[0], pair[1])
		}
	}
}
