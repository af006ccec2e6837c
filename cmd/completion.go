package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"snapshot": predict.Files("*.json"),
			"v":        predict.Nothing,
			"plain":    predict.Nothing,
		},
	}
	for _, g := range commands {
		for _, c := range g.commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{
				Flags: make(map[string]complete.Predictor),
				Args:  argsPredictor(c.Name()),
			}
			f.VisitAll(func(fl *flag.Flag) {
				sub.Flags[fl.Name] = flagPredictor(fl.Name)
			})
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

func flagPredictor(name string) complete.Predictor {
	switch name {
	case "account", "accounts":
		return snapshotPredictor(accountIDs)
	case "goal":
		return snapshotPredictor(goalIDs)
	case "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "type":
		return predict.Set{
			string(finplan.SavingsGoal), string(finplan.InvestmentGoal), string(finplan.RetirementGoal),
			string(finplan.EmergencyFundGoal), string(finplan.DebtPayoffGoal), string(finplan.CustomGoal),
		}
	case "c":
		return predict.Set(categoryNames())
	case "debts", "explicit", "i", "n":
		return predict.Nothing
	}
	return predict.Something
}

func argsPredictor(command string) complete.Predictor {
	switch command {
	case "goal":
		return snapshotPredictor(goalIDs)
	case "balance":
		return snapshotPredictor(accountIDs)
	case "edit-contribution", "delete-contribution":
		return snapshotPredictor(contributionIDs)
	case "import":
		return predict.Files("*.json")
	case "topic":
		if topics, err := docs.GetAllTopics(); err == nil {
			return predict.Set(topics)
		}
	}
	return predict.Nothing
}

// snapshotPredictor predicts ids read from the snapshot. Completion must
// never fail: an unreadable snapshot predicts nothing.
func snapshotPredictor(ids func(*finplan.Snapshot) []string) complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		s, err := finplan.LoadSnapshot(snapshotPath())
		if err != nil {
			return nil
		}
		var res []string
		for _, id := range ids(s) {
			if strings.HasPrefix(id, prefix) {
				res = append(res, id)
			}
		}
		return res
	})
}

func accountIDs(s *finplan.Snapshot) []string {
	var ids []string
	for _, a := range s.Accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

func goalIDs(s *finplan.Snapshot) []string {
	var ids []string
	for _, g := range s.AllGoals() {
		ids = append(ids, g.ID)
	}
	return ids
}

func contributionIDs(s *finplan.Snapshot) []string {
	var ids []string
	for _, c := range s.Contributions {
		ids = append(ids, c.ID)
	}
	return ids
}

func categoryNames() []string {
	var names []string
	for _, c := range finplan.Categories {
		names = append(names, string(c))
	}
	return names
}
