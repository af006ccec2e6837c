package finplan

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/finplan/date"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source tells where an activity entry comes from.
type Source string

const (
	// Linked entries come from synced transactions.
	Linked Source = "linked"
	// Manual entries come from manual contributions.
	Manual Source = "manual"
)

// ActivityEntry is the unified view of a synced transaction or a manual
// contribution.
type ActivityEntry struct {
	ID          string    `json:"id"` // prefixed by the source, so it is unique across sources
	Date        date.Date `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	AccountID   string    `json:"accountId"`
	AccountName string    `json:"accountName"`
	Source      Source    `json:"source"`
	Category    Category  `json:"category"`

	// RunningBalance is the account balance as of and including this entry.
	// It is only set by RunningBalances.
	RunningBalance *float64 `json:"runningBalance,omitempty"`
}

// IsManual reports whether the entry was entered by hand, and can therefore be edited.
func (e ActivityEntry) IsManual() bool { return e.Source == Manual }

// SourceID returns the id of the transaction or contribution behind the entry.
func (e ActivityEntry) SourceID() string {
	return strings.TrimPrefix(e.ID, string(e.Source)+"-")
}

// MergeActivity merges synced transactions and manual contributions of all
// accounts into a single ledger, most recent first.
//
// Account names are resolved against accounts, an unknown account id is
// named UnknownAccountName and an account without a name goes by its id.
func MergeActivity(txs []SyncedTransaction, contribs []ManualContribution, accounts []Account) []ActivityEntry {
	index := accountIndex(accounts)
	name := func(id string) string {
		if a, ok := index[id]; ok {
			return a.DisplayName()
		}
		return UnknownAccountName
	}

	entries := make([]ActivityEntry, 0, len(txs)+len(contribs))
	for _, tx := range txs {
		entries = append(entries, linkedEntry(tx, name(tx.AccountID)))
	}
	for _, c := range contribs {
		entries = append(entries, manualEntry(c, name(c.AccountID)))
	}
	sortNewestFirst(entries)
	return entries
}

// MergeAccountActivity merges the synced transactions and manual
// contributions of a single account, most recent first.
//
// Transactions and contributions of other accounts are ignored, so the
// complete collections can be passed in.
func MergeAccountActivity(txs []SyncedTransaction, contribs []ManualContribution, accountID, accountName string) []ActivityEntry {
	if accountName == "" {
		accountName = accountID
	}
	entries := make([]ActivityEntry, 0)
	for _, tx := range accountTransactions(txs, accountID) {
		entries = append(entries, linkedEntry(tx, accountName))
	}
	for _, c := range accountContributions(contribs, accountID) {
		entries = append(entries, manualEntry(c, accountName))
	}
	sortNewestFirst(entries)
	return entries
}

// sortNewestFirst sorts entries by date, most recent first. Entries on the
// same day keep their relative order.
func sortNewestFirst(entries []ActivityEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

func linkedEntry(tx SyncedTransaction, accountName string) ActivityEntry {
	category := CategoryOf(tx.Categories, tx.Description)
	return ActivityEntry{
		ID:          string(Linked) + "-" + tx.ID,
		Date:        tx.Date,
		Description: linkedDescription(tx.Description, category),
		Amount:      tx.Amount,
		AccountID:   tx.AccountID,
		AccountName: accountName,
		Source:      Linked,
		Category:    category,
	}
}

func manualEntry(c ManualContribution, accountName string) ActivityEntry {
	return ActivityEntry{
		ID:          string(Manual) + "-" + c.ID,
		Date:        c.Date,
		Description: sentenceCase(c.Description),
		Amount:      c.Amount,
		AccountID:   c.AccountID,
		AccountName: accountName,
		Source:      Manual,
		Category:    Transfer,
	}
}

var (
	retirementWords = regexp.MustCompile(`(?i)\b(401\(?k\)?|403\(?b\)?|457\(?b\)?|ira|roth|sep|pension|retirement|annuity)\b`)
	goalWords       = regexp.MustCompile(`(?i)\b(emergency fund|education fund|college fund|rainy day|vacation|wedding|house|home purchase|car|down payment|deposit)\b`)

	// acronyms are restored after title casing.
	acronyms = map[string]string{"Ira": "IRA", "Sep": "SEP", "Hsa": "HSA", "Atm": "ATM", "Ach": "ACH"}
)

// linkedDescription renders a synced description: title case when it names a
// retirement plan or a goal, sentence case otherwise. Words repeating the
// category name are then removed, unless nothing would remain.
func linkedDescription(raw string, category Category) string {
	casing := sentenceCase
	if retirementWords.MatchString(raw) || goalWords.MatchString(raw) {
		casing = titleCase
	}
	desc := casing(raw)
	if stripped := stripCategory(desc, category); stripped != "" {
		return casing(stripped)
	}
	return desc
}

// categoryPatterns caches the patterns of stripCategory, by category.
var categoryPatterns sync.Map // Category -> *regexp.Regexp

func categoryPattern(name string) *regexp.Regexp {
	if re, ok := categoryPatterns.Load(name); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := categoryPatterns.LoadOrStore(name, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	return re.(*regexp.Regexp)
}

// stripCategory removes every occurrence of the category name in s, ignoring
// case, and tidies the remaining separators.
func stripCategory(s string, category Category) string {
	name := strings.TrimSpace(string(category))
	if name == "" {
		return s
	}
	s = categoryPattern(name).ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("-:,;/|", r)
	})
}

// titleCase returns s in English title case: "WHOLE FOODS" becomes "Whole Foods".
func titleCase(s string) string {
	words := strings.Fields(cases.Title(language.English).String(s))
	for i, w := range words {
		if a, ok := acronyms[w]; ok {
			words[i] = a
		}
	}
	return strings.Join(words, " ")
}

// sentenceCase returns s lower-cased with an upper-case first letter.
func sentenceCase(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	s = cases.Lower(language.English).String(s)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
