// Package finplan is the ledger merge and goal progress engine of a personal
// finance planner.
//
// It reconciles two heterogeneous money-movement sources, transactions synced
// from a bank-data aggregator and contributions entered by hand, into one
// chronologically ordered activity ledger per account. From that ledger it
// derives running balances, normalizes transaction categories, and computes
// progress towards savings, investing and debt-payoff goals.
//
// The core functionalities are:
//   - Category Normalizer: CategoryOf maps raw aggregator tags and free text to
//     one canonical Category and its icon.
//   - Activity Merge: MergeActivity and MergeAccountActivity build the unified
//     ActivityEntry ledger, newest first.
//   - Balance Reconciler: AccountBalance and RunningBalances reconstruct
//     balances exactly, using decimal arithmetic internally.
//   - Goal Progress: ComputeGoalProgress applies the accumulation or the
//     debt-payoff formulas to one or several linked accounts.
//
// Every function of the engine is pure: no hidden state, no I/O, no caching.
// Callers own the data (see Snapshot) and re-invoke the engine after any
// change. Missing or empty inputs are never an error, they simply mean "no
// information".
package finplan
