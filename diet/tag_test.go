package diet

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	tr := NewTagRegistry()
	tr.Register("vegan", NewRestriction("ANIMAL_PRODUCTS"), "ethical")

	tag, err := tr.Get("VEGAN")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if tag.Name() != "VEGAN" {
		t.Errorf("Name: got %s, want VEGAN", tag.Name())
	}
	if tag.Category() != "ethical" {
		t.Errorf("Category: got %s, want ethical", tag.Category())
	}

	_, err = tr.Get("CARNIVORE")
	var unknown *UnknownTagError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownTagError, got %v", err)
	}
}

func TestRegisterOverwriteKeepsOrder(t *testing.T) {
	tr := NewTagRegistry()
	tr.Register("VEGAN", NewRestriction("ANIMAL_PRODUCTS"), "ethical")
	tr.Register("NUT-FREE", NewRestriction("NUTS"), "allergen")
	tr.Register("VEGAN", NewRestriction("ANIMAL_PRODUCTS", "HONEY"), "strict")

	if tr.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", tr.Len())
	}
	if !reflect.DeepEqual(tr.Names(), []string{"VEGAN", "NUT-FREE"}) {
		t.Errorf("Names: got %v", tr.Names())
	}

	tag, _ := tr.Get("VEGAN")
	if tag.Category() != "strict" {
		t.Errorf("Overwrite should replace the category, got %s", tag.Category())
	}
	if !tag.Restriction().Excludes("HONEY") {
		t.Error("Overwrite should replace the restriction")
	}
}

func TestAllIsRestartable(t *testing.T) {
	tr := DefaultTagRegistry()

	var first, second []string
	for name := range tr.All() {
		first = append(first, name)
	}
	for name := range tr.All() {
		second = append(second, name)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("All must yield the same sequence on re-iteration")
	}
	if !reflect.DeepEqual(first, tr.Names()) {
		t.Errorf("All order: got %v, want %v", first, tr.Names())
	}
}

func TestAllEarlyBreak(t *testing.T) {
	tr := DefaultTagRegistry()
	count := 0
	for range tr.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Early break: iterated %d, want 2", count)
	}
}

func TestByCategory(t *testing.T) {
	tr := DefaultTagRegistry()

	ethical := tr.ByCategory("ethical")
	want := []string{"VEGAN", "VEGETARIAN", "PESCATARIAN", "MEAT-FREE"}
	if !reflect.DeepEqual(ethical, want) {
		t.Errorf("ByCategory(ethical): got %v, want %v", ethical, want)
	}

	// Exact, case-sensitive label match.
	if got := tr.ByCategory("Ethical"); got != nil {
		t.Errorf("ByCategory(Ethical): got %v, want nil", got)
	}
}

func TestGenerateTagsSubsetContainment(t *testing.T) {
	tr := NewTagRegistry()
	tr.Register("VEGAN", NewRestriction("ANIMAL_PRODUCTS"), "ethical")
	tr.Register("NUT-FREE", NewRestriction("NUTS"), "allergen")
	tr.Register("GLUTEN-FREE", NewRestriction("GLUTEN"), "allergen")

	got := tr.GenerateTags(NewRestriction("ANIMAL_PRODUCTS", "NUTS"))
	if !reflect.DeepEqual(got, []string{"VEGAN", "NUT-FREE"}) {
		t.Errorf("GenerateTags: got %v, want [VEGAN NUT-FREE]", got)
	}

	if got := tr.GenerateTags(NewRestriction("SOY")); got != nil {
		t.Errorf("GenerateTags with no match: got %v, want nil", got)
	}

	// Empty tag restrictions never match.
	tr.Register("OMNIVORE", NewRestriction(), "ethical")
	got = tr.GenerateTags(NewRestriction("ANIMAL_PRODUCTS"))
	for _, name := range got {
		if name == "OMNIVORE" {
			t.Error("Tags with empty restrictions must not be generated")
		}
	}
}

func TestImpliedTags(t *testing.T) {
	g := DefaultCategoryGraph()
	tr := DefaultTagRegistry()

	implied := tr.ImpliedTags(g, NewRestriction("ANIMAL_PRODUCTS"))
	want := map[string]bool{
		"VEGAN": true, "VEGETARIAN": true, "PESCATARIAN": true, "MEAT-FREE": true,
		"DAIRY-FREE": true, "EGG-FREE": true, "SHELLFISH-FREE": true,
		"FISH-FREE": true, "BEEF-FREE": true,
	}
	got := make(map[string]bool, len(implied))
	for _, name := range implied {
		got[name] = true
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ImpliedTags: got %v, want %v", implied, want)
	}
	if got["NUT-FREE"] || got["GLUTEN-FREE"] {
		t.Error("Plant-side tags must not be implied by an animal-products restriction")
	}
}
