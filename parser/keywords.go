package parser

// keywordEntry maps a vocabulary keyword to the category names it excludes.
// The table is many-to-one: several keywords may share an exclusion set.
type keywordEntry struct {
	keyword    string
	exclusions []string
}

// vocabulary is the ordered keyword table. Order matters: fuzzy-match ties
// are broken by earliest entry.
var vocabulary = []keywordEntry{
	{"vegetarian", []string{"MEAT", "FISH", "SHELLFISH"}},
	{"vegan", []string{"ANIMAL_PRODUCTS"}},
	{"pescatarian", []string{"MEAT"}},
	{"dairy", []string{"DAIRY"}},
	{"lactose", []string{"DAIRY"}},
	{"milk", []string{"DAIRY"}},
	{"cheese", []string{"DAIRY"}},
	{"egg", []string{"EGGS"}},
	{"eggs", []string{"EGGS"}},
	{"beef", []string{"MEAT"}},
	{"meat", []string{"MEAT"}},
	{"fish", []string{"FISH"}},
	{"shellfish", []string{"SHELLFISH"}},
	{"nut", []string{"NUTS"}},
	{"nuts", []string{"NUTS"}},
	{"peanut", []string{"NUTS"}},
	{"peanuts", []string{"NUTS"}},
	{"gluten", []string{"GLUTEN"}},
}

// keywordExclusions provides O(1) exact lookup into the vocabulary.
var keywordExclusions = func() map[string][]string {
	m := make(map[string][]string, len(vocabulary))
	for _, entry := range vocabulary {
		m[entry.keyword] = entry.exclusions
	}
	return m
}()

// noRestrictionPhrases short-circuits parsing: any normalized input equal
// to one of these yields a nil restriction with full confidence.
var noRestrictionPhrases = map[string]bool{
	"":                      true,
	"no":                    true,
	"none":                  true,
	"nope":                  true,
	"naw":                   true,
	"nah":                   true,
	"n/a":                   true,
	"none!":                 true,
	"nope!":                 true,
	"i can eat anything":    true,
	"i can eat everything":  true,
	"everything is fine":    true,
	"i eat everything":      true,
}

// stopWords are filler tokens excluded from fuzzy matching and from the
// confidence denominator. Includes the negators already consumed by the
// no-restriction short-circuit.
var stopWords = map[string]bool{
	"eat":        true,
	"food":       true,
	"diet":       true,
	"anything":   true,
	"everything": true,
	"no":         true,
	"not":        true,
	"can":        true,
	"don":        true,
	"dont":       true,
	"don't":      true,
	"do":         true,
	"all":        true,
	"i":          true,
	"you":        true,
	"we":         true,
}
