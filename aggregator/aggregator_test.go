package aggregator

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
)

const payload = `{
  "accounts": [
    {"account_id": "chk", "name": "Plaid Checking", "type": "depository", "subtype": "checking", "balances": {"current": 1100.5, "limit": null}},
    {"account_id": "cc", "name": "Plaid Credit Card", "type": "credit", "subtype": "credit card", "balances": {"current": 410, "limit": 2000}},
    {"account_id": "stu", "official_name": "Student Loan", "type": "loan", "subtype": "student", "balances": {"current": 6500}},
    {"name": "no id", "type": "depository"}
  ],
  "transactions": [
    {"transaction_id": "t1", "account_id": "chk", "amount": 5.4, "date": "2024-01-10", "name": "STARBUCKS 1234", "merchant_name": "Starbucks", "category": ["Food and Drink", "Coffee Shop"]},
    {"transaction_id": "t2", "account_id": "chk", "amount": -2500, "date": "2024-01-12", "name": "ACME PAYROLL", "personal_finance_category": {"primary": "INCOME"}},
    {"transaction_id": "t3", "account_id": "cc", "amount": -200, "date": "2024-01-15", "name": "AUTOPAY"},
    {"transaction_id": "t4", "account_id": "cc", "amount": 30, "date": "2024-01-16", "name": "SHELL OIL", "category": ["Travel", "Gas Stations"]},
    {"transaction_id": "t5", "account_id": "stu", "amount": -300, "date": "2024-01-20", "name": "NAVIENT"},
    {"transaction_id": "t6", "account_id": "chk", "amount": 12, "date": "2024-01-21", "name": "PENDING", "pending": true},
    {"account_id": "chk", "amount": 1, "date": "2024-01-21"},
    {"transaction_id": "t7", "account_id": "chk", "amount": 1, "date": "not a date"}
  ],
  "liabilities": {
    "credit": [{"account_id": "cc", "aprs": [{"apr_percentage": 24.99, "apr_type": "purchase_apr"}], "minimum_payment_amount": 35}],
    "student": [{"account_id": "stu", "interest_rate_percentage": 5.25, "minimum_payment_amount": 120}],
    "mortgage": [{"account_id": "ghost", "interest_rate": {"percentage": 3.1}}]
  }
}`

func TestDecode(t *testing.T) {
	res, err := Decode(context.Background(), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(res.Accounts) != 3 {
		t.Fatalf("Decode() = %d accounts, want 3", len(res.Accounts))
	}
	if res.Skipped != 4 {
		t.Errorf("Decode().Skipped = %d, want 4", res.Skipped)
	}

	chk, cc, stu := res.Accounts[0], res.Accounts[1], res.Accounts[2]
	if chk.Type != finplan.Checking || chk.Balance != 1100.5 || chk.CreditLimit != nil || !chk.Linked {
		t.Errorf("checking account = %+v", chk)
	}
	if cc.Type != finplan.CreditCard || cc.CreditLimit == nil || *cc.CreditLimit != 2000 {
		t.Errorf("credit card account = %+v", cc)
	}
	if cc.InterestRate == nil || *cc.InterestRate != 24.99 || cc.MinimumPayment == nil || *cc.MinimumPayment != 35 {
		t.Errorf("credit card liabilities not applied: %+v", cc)
	}
	if stu.Name != "Student Loan" || stu.Type != finplan.StudentLoan || *stu.InterestRate != 5.25 {
		t.Errorf("student loan account = %+v", stu)
	}

	testCases := []struct {
		id       string
		amount   float64
		desc     string
		category finplan.Category
	}{
		{id: "t1", amount: -5.4, desc: "Starbucks", category: finplan.EatingOut},
		{id: "t2", amount: 2500, desc: "ACME PAYROLL", category: finplan.Income},
		{id: "t3", amount: 200, desc: "AUTOPAY", category: finplan.Other},
		{id: "t4", amount: -30, desc: "SHELL OIL", category: finplan.Travel},
		{id: "t5", amount: -300, desc: "NAVIENT", category: finplan.Other},
	}
	if len(res.Transactions) != len(testCases) {
		t.Fatalf("Decode() = %d transactions, want %d", len(res.Transactions), len(testCases))
	}
	for i, tc := range testCases {
		tx := res.Transactions[i]
		if tx.ID != tc.id || tx.Amount != tc.amount || tx.Description != tc.desc {
			t.Errorf("transaction %d = {%s %v %q}, want {%s %v %q}", i, tx.ID, tx.Amount, tx.Description, tc.id, tc.amount, tc.desc)
		}
		if got := finplan.CategoryOf(tx.Categories, tx.Description); got != tc.category {
			t.Errorf("transaction %s category = %q, want %q", tx.ID, got, tc.category)
		}
	}
	if got := res.Transactions[0].Date; got != date.New(2024, 1, 10) {
		t.Errorf("transaction t1 date = %s, want 2024-01-10", got)
	}
}

func TestDecode_Payments(t *testing.T) {
	res, err := Decode(context.Background(), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// payments keep the sign the engine expects for each kind of debt.
	goal := finplan.Goal{ID: "g", Type: finplan.DebtPayoffGoal, AccountIDs: []string{"cc", "stu"}}
	got := finplan.ComputeGoalProgress(goal, res.Accounts, nil, res.Transactions)
	if got.Current != 500 || got.Remaining != 6910 || got.Target != 7410 {
		t.Errorf("ComputeGoalProgress() = %+v, want current 500, remaining 6910, target 7410", got)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode(context.Background(), strings.NewReader("{")); err == nil {
		t.Errorf("Decode(truncated) returned no error")
	}
	res, err := Decode(context.Background(), strings.NewReader("{}"))
	if err != nil || len(res.Accounts) != 0 || len(res.Transactions) != 0 {
		t.Errorf("Decode({}) = %+v, %v, want an empty result", res, err)
	}
}

func TestAccountType(t *testing.T) {
	testCases := []struct {
		typ, subtype string
		want         finplan.AccountType
	}{
		{"depository", "savings", finplan.Savings},
		{"depository", "", finplan.Checking},
		{"credit", "credit card", finplan.CreditCard},
		{"loan", "mortgage", finplan.Mortgage},
		{"loan", "line of credit", finplan.LineOfCredit},
		{"loan", "", finplan.Loan},
		{"investment", "401k", finplan.Plan401k},
		{"investment", "roth", finplan.IRA},
		{"investment", "", finplan.Investment},
		{"other", "prepaid", finplan.OtherAccount},
	}
	for _, tc := range testCases {
		if got := AccountType(tc.typ, tc.subtype); got != tc.want {
			t.Errorf("AccountType(%q, %q) = %q, want %q", tc.typ, tc.subtype, got, tc.want)
		}
	}
}
