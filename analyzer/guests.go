package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mealfit/mealfit/diet"
	"github.com/mealfit/mealfit/parser"
)

// Guest is a raw guest-list row: a name plus freeform restriction text.
type Guest struct {
	Name            string
	RestrictionText string
}

// ReadGuests parses a guest list from CSV. The file must carry a header
// row with "Name" and "Dietary Restriction" columns (matched
// case-insensitively); extra columns are ignored.
func ReadGuests(r io.Reader) ([]Guest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read guest list header: %w", err)
	}

	nameCol, restrictionCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameCol = i
		case "dietary restriction", "restriction":
			restrictionCol = i
		}
	}
	if nameCol < 0 || restrictionCol < 0 {
		return nil, fmt.Errorf("guest list needs Name and Dietary Restriction columns, got %v", header)
	}

	var guests []Guest
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read guest list row: %w", err)
		}
		if nameCol >= len(record) || restrictionCol >= len(record) {
			continue
		}
		guests = append(guests, Guest{
			Name:            strings.TrimSpace(record[nameCol]),
			RestrictionText: strings.TrimSpace(record[restrictionCol]),
		})
	}
	return guests, nil
}

// GuestAnalysis summarizes a guest list's dietary needs: who restricts
// what, which canonical tags apply, and where restrictions overlap.
type GuestAnalysis struct {
	graph  *diet.CategoryGraph
	tags   *diet.TagRegistry
	people []diet.Person
}

// AnalyzeGuests parses each guest's restriction text through p and wraps
// the resulting people. Text the parser cannot interpret is treated as no
// restriction, matching the parser's soft-failure contract.
func AnalyzeGuests(graph *diet.CategoryGraph, tags *diet.TagRegistry, p *parser.Parser, guests []Guest) *GuestAnalysis {
	people := make([]diet.Person, 0, len(guests))
	for _, guest := range guests {
		restriction := diet.NewRestriction()
		if parsed := p.Parse(guest.RestrictionText); parsed != nil {
			restriction = *parsed
		}
		people = append(people, diet.NewPerson(guest.Name, restriction))
	}
	return &GuestAnalysis{graph: graph, tags: tags, people: people}
}

// NewGuestAnalysis wraps already-constructed people.
func NewGuestAnalysis(graph *diet.CategoryGraph, tags *diet.TagRegistry, people []diet.Person) *GuestAnalysis {
	return &GuestAnalysis{graph: graph, tags: tags, people: people}
}

// People returns the parsed guests in input order.
func (ga *GuestAnalysis) People() []diet.Person {
	out := make([]diet.Person, len(ga.people))
	copy(out, ga.people)
	return out
}

// GroupCount pairs a grouping key with how many guests fall under it.
type GroupCount struct {
	Key   string
	Count int
}

// Group pairs a grouping key with the guests under it, in input order.
type Group struct {
	Key   string
	Names []string
}

const noRestrictionsKey = "NO-RESTRICTIONS"

func restrictionKey(r diet.Restriction) string {
	if r.Empty() {
		return "No restrictions"
	}
	return r.String()
}

// RestrictionSummary counts guests per distinct restriction, in first-seen
// order.
func (ga *GuestAnalysis) RestrictionSummary() []GroupCount {
	return countBy(ga.people, func(p diet.Person) []string {
		return []string{restrictionKey(p.Restriction())}
	})
}

// TagSummary counts guests per implied canonical tag. A guest with an
// empty restriction counts under NO-RESTRICTIONS.
func (ga *GuestAnalysis) TagSummary() []GroupCount {
	return countBy(ga.people, ga.impliedTags)
}

func (ga *GuestAnalysis) impliedTags(p diet.Person) []string {
	if p.Restriction().Empty() {
		return []string{noRestrictionsKey}
	}
	tags := ga.tags.ImpliedTags(ga.graph, p.Restriction())
	if len(tags) == 0 {
		// No canonical tag covers it; synthesize X-FREE labels.
		var out []string
		for _, name := range p.Restriction().Excluded() {
			out = append(out, name+"-FREE")
		}
		return out
	}
	return tags
}

// CommonRestrictions returns the categories restricted by at least
// minCount guests, most-restricted first.
func (ga *GuestAnalysis) CommonRestrictions(minCount int) []GroupCount {
	counts := countBy(ga.people, func(p diet.Person) []string {
		return p.Restriction().Excluded()
	})
	var out []GroupCount
	for _, gc := range counts {
		if gc.Count >= minCount {
			out = append(out, gc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// RestrictionGroups groups guest names by their distinct restriction, in
// first-seen order.
func (ga *GuestAnalysis) RestrictionGroups() []Group {
	return groupBy(ga.people, func(p diet.Person) []string {
		return []string{restrictionKey(p.Restriction())}
	})
}

// TagGroups groups guest names by implied tag; a guest appears under every
// tag that applies.
func (ga *GuestAnalysis) TagGroups() []Group {
	return groupBy(ga.people, ga.impliedTags)
}

// CategoryMatrix is a guests × categories grid of what each guest can eat.
type CategoryMatrix struct {
	Names      []string
	Categories []string
	CanEat     [][]bool
}

// RestrictionMatrix builds a guests × categories grid over every category
// any guest restricts. Columns are sorted; a cell is true when the guest's
// restriction does not forbid the category.
func (ga *GuestAnalysis) RestrictionMatrix() CategoryMatrix {
	categorySet := make(map[string]bool)
	for _, p := range ga.people {
		for _, name := range p.Restriction().Excluded() {
			categorySet[name] = true
		}
	}
	categories := make([]string, 0, len(categorySet))
	for name := range categorySet {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	m := CategoryMatrix{
		Names:      make([]string, len(ga.people)),
		Categories: categories,
		CanEat:     make([][]bool, len(ga.people)),
	}
	for i, p := range ga.people {
		m.Names[i] = p.Name
		row := make([]bool, len(categories))
		for j, name := range categories {
			forbidden := p.Restriction().Excludes(name)
			if !forbidden {
				if category, err := ga.graph.Get(name); err == nil {
					forbidden = p.Restriction().Forbids(ga.graph, category)
				}
			}
			row[j] = !forbidden
		}
		m.CanEat[i] = row
	}
	return m
}

// countBy tallies keys emitted per person, preserving first-seen key order.
func countBy(people []diet.Person, keys func(diet.Person) []string) []GroupCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range people {
		for _, key := range keys(p) {
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}
	out := make([]GroupCount, 0, len(order))
	for _, key := range order {
		out = append(out, GroupCount{Key: key, Count: counts[key]})
	}
	return out
}

func groupBy(people []diet.Person, keys func(diet.Person) []string) []Group {
	members := make(map[string][]string)
	var order []string
	for _, p := range people {
		for _, key := range keys(p) {
			if _, seen := members[key]; !seen {
				order = append(order, key)
			}
			members[key] = append(members[key], p.Name)
		}
	}
	out := make([]Group, 0, len(order))
	for _, key := range order {
		out = append(out, Group{Key: key, Names: members[key]})
	}
	return out
}
