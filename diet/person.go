package diet

import "strings"

// Person pairs a name with a concrete dietary restriction. The restriction
// is resolved once at construction: either supplied directly, or looked up
// from a tag via NewPersonWithTag. When both sources are available to a
// caller, the tag takes precedence.
type Person struct {
	Name        string
	restriction Restriction
	tagName     string
}

// NewPerson creates a person with a directly supplied restriction.
func NewPerson(name string, restriction Restriction) Person {
	return Person{Name: name, restriction: restriction}
}

// NewPersonWithTag creates a person whose restriction is resolved from the
// named tag. Returns *UnknownTagError when the tag is not registered.
func NewPersonWithTag(name, tagName string, tags *TagRegistry) (Person, error) {
	tag, err := tags.Get(tagName)
	if err != nil {
		return Person{}, err
	}
	return Person{Name: name, restriction: tag.Restriction(), tagName: tag.Name()}, nil
}

// Restriction returns the person's resolved restriction.
func (p Person) Restriction() Restriction { return p.restriction }

// TagName returns the tag the restriction was resolved from, or "" when the
// restriction was supplied directly.
func (p Person) TagName() string { return p.tagName }

// Label renders the person's name with the canonical tags implied by their
// restriction, e.g. "Alice [VEGAN | DAIRY-FREE]". A person whose
// restriction implies no tag is labeled by name alone.
func (p Person) Label(tags *TagRegistry) string {
	generated := tags.GenerateTags(p.restriction)
	if len(generated) == 0 {
		return p.Name
	}
	return p.Name + " [" + strings.Join(generated, " | ") + "]"
}

func (p Person) String() string { return p.Name }
