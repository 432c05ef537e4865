package parser

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"no dairy", []string{"no", "dairy"}},
		{"vegetarian, dairy-free!", []string{"vegetarian", "dairy", "free"}},
		{"i don't eat meat", []string{"i", "don't", "eat", "meat"}},
		{"dairy  dairy", []string{"dairy", "dairy"}},
		{"", nil},
		{"...!?", nil},
		{"gluten/nuts", []string{"gluten", "nuts"}},
		{"'quoted'", []string{"quoted"}},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}
