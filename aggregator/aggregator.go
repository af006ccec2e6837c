// Package aggregator maps the accounts, transactions and liabilities payload
// of a bank-data aggregator into finplan values.
//
// The payload is Plaid-shaped:
//
//	{
//	  "accounts": [{"account_id": "...", "name": "...", "type": "depository", "subtype": "checking",
//	                "balances": {"current": 110.5, "limit": null}}],
//	  "transactions": [{"transaction_id": "...", "account_id": "...", "amount": 12.3, "date": "2024-01-10",
//	                    "name": "...", "merchant_name": "...", "category": ["Food and Drink"], "pending": false}],
//	  "liabilities": {"credit": [...], "student": [...], "mortgage": [...]}
//	}
//
// Values are read with JSONPath expressions, a missing value is "no
// information" and never fails the decoding.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/etnz/finplan/logger"
)

// Result is the content of an aggregator payload.
type Result struct {
	Accounts     []finplan.Account
	Transactions []finplan.SyncedTransaction
	// Skipped counts the records that could not be used.
	Skipped int
}

// Decode reads an aggregator payload.
//
// Aggregator amounts are positive when money leaves the account. They are
// converted to the engine conventions: negated, except on installment debt
// accounts where a payment stays negative.
func Decode(ctx context.Context, r io.Reader) (*Result, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode aggregator payload: %w", err)
	}
	log := logger.FromContext(ctx)

	res := new(Result)
	kinds := make(map[string]finplan.DebtKind)
	for i, jacc := range list("$.accounts[*]", jobj) {
		a := Account(jacc)
		if a.ID == "" {
			log.Warn().Int("index", i).Msg("skipping aggregator account without account_id")
			res.Skipped++
			continue
		}
		kinds[a.ID] = a.Type.DebtKind()
		res.Accounts = append(res.Accounts, a)
	}
	applyLiabilities(ctx, res.Accounts, jobj)

	for i, jtx := range list("$.transactions[*]", jobj) {
		if pending, _ := get("$.pending", jtx).(bool); pending {
			log.Debug().Str("id", str("$.transaction_id", jtx)).Msg("skipping pending transaction")
			res.Skipped++
			continue
		}
		tx, err := Transaction(jtx)
		if err != nil {
			log.Warn().Int("index", i).Err(err).Msg("skipping aggregator transaction")
			res.Skipped++
			continue
		}
		kind, ok := kinds[tx.AccountID]
		if !ok {
			log.Debug().Str("id", tx.ID).Str("account", tx.AccountID).Msg("transaction of an unknown account")
		}
		if kind != finplan.InstallmentDebt {
			tx.Amount = -tx.Amount
		}
		res.Transactions = append(res.Transactions, tx)
	}
	log.Debug().Int("accounts", len(res.Accounts)).Int("transactions", len(res.Transactions)).Int("skipped", res.Skipped).Msg("aggregator payload decoded")
	return res, nil
}

// Account maps an aggregator account object.
func Account(jacc any) finplan.Account {
	a := finplan.Account{
		ID:      str("$.account_id", jacc),
		Name:    str("$.name", jacc),
		Type:    AccountType(str("$.type", jacc), str("$.subtype", jacc)),
		Balance: num("$.balances.current", jacc),
		Linked:  true,
	}
	if a.Name == "" {
		a.Name = str("$.official_name", jacc)
	}
	if limit, ok := optNum("$.balances.limit", jacc); ok && limit > 0 {
		a.CreditLimit = &limit
	}
	return a
}

// Transaction maps an aggregator transaction object, keeping the aggregator
// sign.
func Transaction(jtx any) (finplan.SyncedTransaction, error) {
	tx := finplan.SyncedTransaction{
		ID:          str("$.transaction_id", jtx),
		AccountID:   str("$.account_id", jtx),
		Amount:      num("$.amount", jtx),
		Description: str("$.merchant_name", jtx),
		Categories:  strs("$.category", jtx),
	}
	if tx.ID == "" {
		return tx, fmt.Errorf("missing transaction_id")
	}
	if tx.Description == "" {
		tx.Description = str("$.name", jtx)
	}
	if len(tx.Categories) == 0 {
		if primary := str("$.personal_finance_category.primary", jtx); primary != "" {
			tx.Categories = []string{primary}
		}
	}
	on := str("$.date", jtx)
	if on == "" {
		on = str("$.authorized_date", jtx)
	}
	d, err := date.Parse(on)
	if err != nil {
		return tx, fmt.Errorf("transaction %q: %w", tx.ID, err)
	}
	tx.Date = d
	return tx, nil
}

// AccountType maps the aggregator account type and subtype.
func AccountType(typ, subtype string) finplan.AccountType {
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "depository":
		switch subtype {
		case "savings":
			return finplan.Savings
		case "money market":
			return finplan.MoneyMarket
		case "cd":
			return finplan.CD
		case "hsa":
			return finplan.HSA
		default:
			return finplan.Checking
		}
	case "credit":
		return finplan.CreditCard
	case "loan":
		switch subtype {
		case "mortgage", "home equity":
			return finplan.Mortgage
		case "student":
			return finplan.StudentLoan
		case "auto":
			return finplan.AutoLoan
		case "line of credit":
			return finplan.LineOfCredit
		case "personal", "consumer":
			return finplan.PersonalLoan
		default:
			return finplan.Loan
		}
	case "investment", "brokerage":
		switch subtype {
		case "401k", "401a", "403b", "457b":
			return finplan.Plan401k
		case "ira", "roth", "sep ira", "simple ira":
			return finplan.IRA
		case "pension", "retirement":
			return finplan.Retirement
		case "brokerage":
			return finplan.Brokerage
		default:
			return finplan.Investment
		}
	default:
		return finplan.OtherAccount
	}
}

// applyLiabilities sets interest rates and minimum payments from the
// liabilities section on the accounts they describe.
func applyLiabilities(ctx context.Context, accounts []finplan.Account, jobj any) {
	log := logger.FromContext(ctx)
	index := make(map[string]int, len(accounts))
	for i, a := range accounts {
		index[a.ID] = i
	}
	apply := func(kind, ratePath, paymentPath string) {
		for _, jl := range list("$.liabilities."+kind+"[*]", jobj) {
			id := str("$.account_id", jl)
			i, ok := index[id]
			if !ok {
				log.Debug().Str("account", id).Str("kind", kind).Msg("liability of an unknown account")
				continue
			}
			if rate, ok := optNum(ratePath, jl); ok {
				accounts[i].InterestRate = &rate
			}
			if payment, ok := optNum(paymentPath, jl); ok {
				accounts[i].MinimumPayment = &payment
			}
		}
	}
	apply("credit", "$.aprs[0].apr_percentage", "$.minimum_payment_amount")
	apply("student", "$.interest_rate_percentage", "$.minimum_payment_amount")
	apply("mortgage", "$.interest_rate.percentage", "$.next_monthly_payment")
}

// get evaluates path on obj, nil when there is no value.
func get(path string, obj any) any {
	jval, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil
	}
	return jval
}

// first is like get, but keeps the first answer when the path yields a list.
func first(path string, obj any) any {
	jval := get(path, obj)
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil
		}
		jval = jlist[0]
	}
	return jval
}

func list(path string, obj any) []any {
	jlist, _ := get(path, obj).([]any)
	return jlist
}

func str(path string, obj any) string {
	s, _ := first(path, obj).(string)
	return strings.TrimSpace(s)
}

func strs(path string, obj any) []string {
	var res []string
	for _, v := range list(path, obj) {
		if s, ok := v.(string); ok && s != "" {
			res = append(res, s)
		}
	}
	return res
}

func num(path string, obj any) float64 {
	v, _ := optNum(path, obj)
	return v
}

func optNum(path string, obj any) (float64, bool) {
	v, ok := first(path, obj).(float64)
	return v, ok
}
