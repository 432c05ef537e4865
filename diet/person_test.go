package diet

import (
	"errors"
	"testing"
)

func TestNewPersonWithTag(t *testing.T) {
	tr := DefaultTagRegistry()

	person, err := NewPersonWithTag("Alice", "vegan", tr)
	if err != nil {
		t.Fatalf("NewPersonWithTag failed: %v", err)
	}
	if person.TagName() != "VEGAN" {
		t.Errorf("TagName: got %s, want VEGAN", person.TagName())
	}
	if !person.Restriction().Excludes("ANIMAL_PRODUCTS") {
		t.Error("Restriction should be resolved from the tag at construction")
	}

	_, err = NewPersonWithTag("Bob", "FRUITARIAN", tr)
	var unknown *UnknownTagError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownTagError, got %v", err)
	}
}

func TestPersonLabel(t *testing.T) {
	tr := NewTagRegistry()
	tr.Register("VEGAN", NewRestriction("ANIMAL_PRODUCTS"), "ethical")
	tr.Register("NUT-FREE", NewRestriction("NUTS"), "allergen")

	person := NewPerson("Alice", NewRestriction("ANIMAL_PRODUCTS", "NUTS"))
	if got := person.Label(tr); got != "Alice [VEGAN | NUT-FREE]" {
		t.Errorf("Label: got %q", got)
	}

	unrestricted := NewPerson("Bob", NewRestriction())
	if got := unrestricted.Label(tr); got != "Bob" {
		t.Errorf("Label with no tags: got %q, want Bob", got)
	}
}
