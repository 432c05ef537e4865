package diet

import "fmt"

// UndefinedCategoryError is returned when a category name cannot be resolved
// in the graph, either directly via Get or while defining a child whose
// parent has not been defined yet.
type UndefinedCategoryError struct {
	Name string
}

func (e *UndefinedCategoryError) Error() string {
	return fmt.Sprintf("food category %q is not defined", e.Name)
}

// DuplicateCategoryError is returned when Define is called with a name that
// is already registered. Categories cannot be redefined; use Reset and
// rebuild the graph instead.
type DuplicateCategoryError struct {
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("food category %q is already defined", e.Name)
}

// UnknownTagError is returned when a tag name is not present in the registry.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("dietary tag %q is not registered", e.Name)
}
