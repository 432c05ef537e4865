package diet

import (
	"errors"
	"testing"
)

func buildTestGraph(t *testing.T) *CategoryGraph {
	t.Helper()
	g := NewCategoryGraph()
	for _, def := range []struct {
		name    string
		parents []string
	}{
		{"ANIMAL_PRODUCTS", nil},
		{"FERMENTED", nil},
		{"DAIRY", []string{"ANIMAL_PRODUCTS"}},
		{"CHEESE", []string{"DAIRY", "FERMENTED"}},
		{"MEAT", []string{"ANIMAL_PRODUCTS"}},
	} {
		if _, err := g.Define(def.name, def.parents...); err != nil {
			t.Fatalf("Define(%s) failed: %v", def.name, err)
		}
	}
	return g
}

func TestDefineNormalizesNames(t *testing.T) {
	g := NewCategoryGraph()
	category, err := g.Define("dairy")
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if category.Name() != "DAIRY" {
		t.Errorf("Name: got %s, want DAIRY", category.Name())
	}
	if _, err := g.Get("Dairy"); err != nil {
		t.Errorf("Get with mixed case failed: %v", err)
	}
}

func TestDefineDuplicate(t *testing.T) {
	g := buildTestGraph(t)
	_, err := g.Define("DAIRY")
	if err == nil {
		t.Fatal("Expected error for duplicate definition, got nil")
	}
	var dup *DuplicateCategoryError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateCategoryError, got %T", err)
	}
	if dup.Name != "DAIRY" {
		t.Errorf("Error name: got %s, want DAIRY", dup.Name)
	}
}

func TestDefineUndefinedParent(t *testing.T) {
	g := NewCategoryGraph()
	_, err := g.Define("CHEESE", "DAIRY")
	if err == nil {
		t.Fatal("Expected error for undefined parent, got nil")
	}
	var undef *UndefinedCategoryError
	if !errors.As(err, &undef) {
		t.Fatalf("Expected UndefinedCategoryError, got %T", err)
	}
	if undef.Name != "DAIRY" {
		t.Errorf("Error name: got %s, want DAIRY", undef.Name)
	}
	// The failed definition must not register the child.
	if _, err := g.Get("CHEESE"); err == nil {
		t.Error("CHEESE should not be defined after failed Define")
	}
}

func TestGetUndefined(t *testing.T) {
	g := NewCategoryGraph()
	_, err := g.Get("NUTS")
	var undef *UndefinedCategoryError
	if !errors.As(err, &undef) {
		t.Fatalf("Expected UndefinedCategoryError, got %v", err)
	}
}

func TestAncestorsTransitive(t *testing.T) {
	g := buildTestGraph(t)
	ancestors, err := g.Ancestors("CHEESE")
	if err != nil {
		t.Fatalf("Ancestors failed: %v", err)
	}

	want := map[string]bool{"DAIRY": true, "FERMENTED": true, "ANIMAL_PRODUCTS": true}
	if len(ancestors) != len(want) {
		t.Fatalf("Ancestors: got %v, want keys %v", ancestors, want)
	}
	for _, name := range ancestors {
		if !want[name] {
			t.Errorf("Unexpected ancestor %s", name)
		}
		if name == "CHEESE" {
			t.Error("Ancestors must not contain the category itself")
		}
	}
}

func TestAncestorsDiamond(t *testing.T) {
	// Two independent paths to the same root must yield it exactly once.
	g := NewCategoryGraph()
	mustDefine := func(name string, parents ...string) {
		t.Helper()
		if _, err := g.Define(name, parents...); err != nil {
			t.Fatalf("Define(%s) failed: %v", name, err)
		}
	}
	mustDefine("ANIMAL_PRODUCTS")
	mustDefine("DAIRY", "ANIMAL_PRODUCTS")
	mustDefine("FISH", "ANIMAL_PRODUCTS")
	mustDefine("SURF_AND_CHEESE", "DAIRY", "FISH")

	ancestors, err := g.Ancestors("SURF_AND_CHEESE")
	if err != nil {
		t.Fatalf("Ancestors failed: %v", err)
	}
	count := 0
	for _, name := range ancestors {
		if name == "ANIMAL_PRODUCTS" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("ANIMAL_PRODUCTS appeared %d times, want exactly 1", count)
	}
}

func TestIsA(t *testing.T) {
	g := buildTestGraph(t)

	tests := []struct {
		name     string
		ancestor string
		want     bool
	}{
		{"CHEESE", "CHEESE", true},
		{"CHEESE", "DAIRY", true},
		{"CHEESE", "ANIMAL_PRODUCTS", true},
		{"CHEESE", "FERMENTED", true},
		{"CHEESE", "MEAT", false},
		{"DAIRY", "CHEESE", false},
		{"cheese", "dairy", true},
	}
	for _, tt := range tests {
		got, err := g.IsA(tt.name, tt.ancestor)
		if err != nil {
			t.Fatalf("IsA(%s, %s) failed: %v", tt.name, tt.ancestor, err)
		}
		if got != tt.want {
			t.Errorf("IsA(%s, %s): got %v, want %v", tt.name, tt.ancestor, got, tt.want)
		}
	}

	if _, err := g.IsA("UNDEFINED", "DAIRY"); err == nil {
		t.Error("IsA on undefined category should fail")
	}
}

func TestReset(t *testing.T) {
	g := buildTestGraph(t)
	g.Reset()
	if g.Len() != 0 {
		t.Errorf("Len after Reset: got %d, want 0", g.Len())
	}
	if _, err := g.Get("DAIRY"); err == nil {
		t.Error("Get after Reset should fail")
	}
	// Redefinition after Reset is allowed.
	if _, err := g.Define("DAIRY"); err != nil {
		t.Errorf("Define after Reset failed: %v", err)
	}
}

func TestAllPreservesDefinitionOrder(t *testing.T) {
	g := buildTestGraph(t)
	want := []string{"ANIMAL_PRODUCTS", "FERMENTED", "DAIRY", "CHEESE", "MEAT"}
	all := g.All()
	if len(all) != len(want) {
		t.Fatalf("All: got %d categories, want %d", len(all), len(want))
	}
	for i, category := range all {
		if category.Name() != want[i] {
			t.Errorf("All[%d]: got %s, want %s", i, category.Name(), want[i])
		}
	}
}

func TestCategorize(t *testing.T) {
	g := buildTestGraph(t)

	category, err := g.Categorize("aged cheese wheel")
	if err != nil {
		t.Fatalf("Categorize failed: %v", err)
	}
	if category.Name() != "CHEESE" {
		t.Errorf("Categorize: got %s, want CHEESE", category.Name())
	}

	if _, err := g.Categorize("mystery substance"); err == nil {
		t.Error("Categorize with no match should fail")
	}
}
