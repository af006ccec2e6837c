package finplan

import (
	"fmt"
	"strings"
)

// AccountType is the kind of a financial holding.
type AccountType string

const (
	Checking     AccountType = "checking"
	Savings      AccountType = "savings"
	CreditCard   AccountType = "credit_card"
	Loan         AccountType = "loan"
	Investment   AccountType = "investment"
	MoneyMarket  AccountType = "money_market"
	CD           AccountType = "cd"
	Brokerage    AccountType = "brokerage"
	Retirement   AccountType = "retirement"
	Plan401k     AccountType = "401k"
	IRA          AccountType = "ira"
	HSA          AccountType = "hsa"
	LineOfCredit AccountType = "line_of_credit"
	Mortgage     AccountType = "mortgage"
	StudentLoan  AccountType = "student_loan"
	AutoLoan     AccountType = "auto_loan"
	PersonalLoan AccountType = "personal_loan"
	OtherAccount AccountType = "other"
)

// DebtKind tells how an account carries debt, and therefore which sign a
// payment has on its transactions.
type DebtKind int

const (
	// NotDebt accounts hold assets.
	NotDebt DebtKind = iota
	// RevolvingDebt accounts (credit cards, lines of credit) report a payment
	// as a positive amount.
	RevolvingDebt
	// InstallmentDebt accounts (loans, mortgages) report a payment as a
	// negative amount.
	InstallmentDebt
)

func (k DebtKind) String() string {
	switch k {
	case NotDebt:
		return "asset"
	case RevolvingDebt:
		return "revolving"
	case InstallmentDebt:
		return "installment"
	default:
		return "unknown"
	}
}

// DebtKind returns the debt kind of an account type.
func (t AccountType) DebtKind() DebtKind {
	switch t {
	case CreditCard, LineOfCredit:
		return RevolvingDebt
	case Loan, Mortgage, StudentLoan, AutoLoan, PersonalLoan:
		return InstallmentDebt
	default:
		return NotDebt
	}
}

// IsDebt reports whether accounts of this type represent an amount owed.
func (t AccountType) IsDebt() bool { return t.DebtKind() != NotDebt }

// IsPayment reports whether a transaction amount on an account of kind k is a
// payment towards the balance owed.
//
// Accounts that are not debt follow the installment convention: money leaving
// the account is negative.
func (k DebtKind) IsPayment(amount float64) bool {
	switch k {
	case RevolvingDebt:
		return amount > 0
	case InstallmentDebt:
		return amount < 0
	default:
		return amount < 0
	}
}

// ParseAccountType parses an account type, accepting a few common spellings.
func ParseAccountType(s string) (AccountType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch s {
	case "credit", "creditcard":
		return CreditCard, nil
	case "401(k)":
		return Plan401k, nil
	case "heloc":
		return LineOfCredit, nil
	case "student":
		return StudentLoan, nil
	case "auto":
		return AutoLoan, nil
	case "depository":
		return Checking, nil
	}
	switch t := AccountType(s); t {
	case Checking, Savings, CreditCard, Loan, Investment, MoneyMarket, CD, Brokerage,
		Retirement, Plan401k, IRA, HSA, LineOfCredit, Mortgage, StudentLoan, AutoLoan,
		PersonalLoan, OtherAccount:
		return t, nil
	}
	return OtherAccount, fmt.Errorf("unknown account type %q", s)
}

// Account is a financial holding.
//
// Debt accounts conventionally carry the amount owed as a positive Balance.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Balance        float64     `json:"balance"`
	InterestRate   *float64    `json:"interestRate,omitempty"` // annual, in percent
	MinimumPayment *float64    `json:"minimumPayment,omitempty"`
	CreditLimit    *float64    `json:"creditLimit,omitempty"`
	Linked         bool        `json:"linked,omitempty"` // synced from the aggregator, otherwise tracked by hand
	GoalTarget     *float64    `json:"goalTarget,omitempty"`
}

// UnknownAccountName is the display name of an account id that cannot be resolved.
const UnknownAccountName = "Unknown Account"

// DisplayName is the name of the account, or its id when it has none.
func (a Account) DisplayName() string {
	if strings.TrimSpace(a.Name) == "" {
		return a.ID
	}
	return a.Name
}

// accountIndex indexes accounts by id. The first account wins on duplicate ids.
func accountIndex(accounts []Account) map[string]Account {
	index := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		if _, ok := index[a.ID]; !ok {
			index[a.ID] = a
		}
	}
	return index
}
