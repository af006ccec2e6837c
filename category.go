package finplan

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a canonical spending or income category.
//
// The canonical set is closed, but CategoryOf may return a category built from
// an unknown raw tag, so any string is a valid Category.
type Category string

const (
	Groceries      Category = "Groceries"
	EatingOut      Category = "Eating Out"
	Shopping       Category = "Shopping"
	Transportation Category = "Transportation"
	Gas            Category = "Gas"
	Utilities      Category = "Utilities"
	Rent           Category = "Rent"
	Housing        Category = "Housing"
	Healthcare     Category = "Healthcare"
	Fitness        Category = "Fitness"
	Education      Category = "Education"
	Travel         Category = "Travel"
	Subscriptions  Category = "Subscriptions"
	Insurance      Category = "Insurance"
	Entertainment  Category = "Entertainment"
	Income         Category = "Income"
	Transfer       Category = "Transfer"
	Debts          Category = "Debts"
	Other          Category = "Other"
)

// Categories is the canonical set, in display order.
var Categories = []Category{
	Groceries, EatingOut, Shopping, Transportation, Gas, Utilities, Rent, Housing, Healthcare,
	Fitness, Education, Travel, Subscriptions, Insurance, Entertainment, Income, Transfer, Debts, Other,
}

// groceryKeywords are matched as case-insensitive substrings of the free text.
var groceryKeywords = []string{
	"whole foods", "trader joe", "safeway", "kroger", "costco", "aldi", "publix",
	"wegmans", "sprouts", "food lion", "albertsons", "grocery", "groceries", "supermarket",
}

// paymentKeywords are matched as case-insensitive substrings of the free text.
var paymentKeywords = []string{
	"payment", "loan payment", "credit card payment", "student loan", "auto loan", "personal loan",
}

// tagCategories maps cleaned raw tags, or single words of them, to categories.
var tagCategories = map[string]Category{
	"food and drink":                 EatingOut,
	"food":                           EatingOut,
	"dining":                         EatingOut,
	"restaurants":                    EatingOut,
	"restaurant":                     EatingOut,
	"fast food":                      EatingOut,
	"coffee shop":                    EatingOut,
	"coffee":                         EatingOut,
	"supermarkets and groceries":     Groceries,
	"groceries":                      Groceries,
	"grocery":                        Groceries,
	"shops":                          Shopping,
	"shopping":                       Shopping,
	"retail":                         Shopping,
	"general merchandise":            Shopping,
	"transportation":                 Transportation,
	"transport":                      Transportation,
	"taxi":                           Transportation,
	"public transportation":          Transportation,
	"gas":                            Gas,
	"gas stations":                   Gas,
	"fuel":                           Gas,
	"utilities":                      Utilities,
	"utility":                        Utilities,
	"rent":                           Rent,
	"housing":                        Housing,
	"home improvement":               Housing,
	"healthcare":                     Healthcare,
	"medical":                        Healthcare,
	"pharmacies":                     Healthcare,
	"fitness":                        Fitness,
	"gyms and fitness centers":       Fitness,
	"education":                      Education,
	"tuition":                        Education,
	"travel":                         Travel,
	"airlines and aviation services": Travel,
	"lodging":                        Travel,
	"subscriptions":                  Subscriptions,
	"subscription":                   Subscriptions,
	"insurance":                      Insurance,
	"recreation":                     Entertainment,
	"entertainment":                  Entertainment,
	"payroll":                        Income,
	"income":                         Income,
	"transfer":                       Transfer,
}

// categoryIcons maps canonical categories to icon keys.
var categoryIcons = map[Category]string{
	Groceries:      "shopping-cart",
	EatingOut:      "utensils",
	Shopping:       "shopping-bag",
	Transportation: "car",
	Gas:            "fuel",
	Utilities:      "zap",
	Rent:           "home",
	Housing:        "building",
	Healthcare:     "heart-pulse",
	Fitness:        "dumbbell",
	Education:      "graduation-cap",
	Travel:         "plane",
	Subscriptions:  "repeat",
	Insurance:      "shield",
	Entertainment:  "film",
	Income:         "trending-up",
	Transfer:       "arrow-left-right",
	Debts:          "credit-card",
	Other:          "circle",
}

// GenericIcon is the icon key of categories outside the canonical set.
const GenericIcon = "tag"

// Icon returns the icon key of the category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return GenericIcon
}

// IsCanonical reports whether c belongs to the closed canonical set.
func (c Category) IsCanonical() bool {
	_, ok := categoryIcons[c]
	return ok
}

// CategoryOf resolves the canonical category of a transaction from its raw
// aggregator tags and its free text (description or merchant name).
//
// First match wins:
//  1. a grocery retailer or keyword in freeText gives Groceries;
//  2. payment-like text gives Debts;
//  3. the first raw tag is looked up, whole then word by word;
//  4. the first word of the first raw tag, title-cased, otherwise Other.
func CategoryOf(rawTags []string, freeText string) Category {
	text := strings.ToLower(freeText)
	if containsAny(text, groceryKeywords) {
		return Groceries
	}
	if containsAny(text, paymentKeywords) {
		return Debts
	}

	if len(rawTags) == 0 {
		return Other
	}
	tag := cleanTag(rawTags[0])
	if tag == "" {
		return Other
	}
	if c, ok := tagCategories[tag]; ok {
		return c
	}
	words := strings.Fields(tag)
	for _, w := range words {
		if c, ok := tagCategories[w]; ok {
			return c
		}
	}
	return Category(cases.Title(language.English).String(words[0]))
}

// ParseCategory returns the category named by s. A canonical name matches
// regardless of case, anything else is resolved like a raw tag by CategoryOf.
func ParseCategory(s string) Category {
	s = strings.Join(strings.Fields(s), " ")
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOf([]string{s}, "")
}

// cleanTag lower-cases a raw tag and turns every run of non alphanumeric
// characters into a single space.
func cleanTag(tag string) string {
	words := strings.FieldsFunc(strings.ToLower(tag), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
