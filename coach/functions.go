package coach

import (
	"context"
	"fmt"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"google.golang.org/genai"
)

// SnapshotFunctions are the tools that let the model look into a snapshot.
func SnapshotFunctions(s *finplan.Snapshot, today date.Date) Tools {
	return Tools{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "list_accounts",
				Description: "Lists the user's accounts with their id, name, type and current balance. Debt balances are amounts owed.",
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return response(id, "list_accounts", map[string]any{"accounts": s.Accounts})
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "account_activity",
				Description: "Returns the activity of one account, most recent first, with the balance after each entry.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"account_id": {Type: genai.TypeString, Description: "The account id, as returned by list_accounts."},
						"limit":      {Type: genai.TypeInteger, Description: "The maximum number of entries, 20 by default."},
					},
					Required: []string{"account_id"},
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				accountID, _ := args["account_id"].(string)
				entries, err := s.AccountActivity(accountID)
				if err != nil {
					return failure(id, "account_activity", err)
				}
				limit := 20
				if l, ok := args["limit"].(float64); ok && l > 0 {
					limit = int(l)
				}
				if len(entries) > limit {
					entries = entries[:limit]
				}
				return response(id, "account_activity", map[string]any{"entries": entries})
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "goal_progress",
				Description: "Returns the progress and projection of one goal.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"goal_id": {Type: genai.TypeString, Description: "The goal id."},
					},
					Required: []string{"goal_id"},
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				goalID, _ := args["goal_id"].(string)
				g, err := s.Goal(goalID)
				if err != nil {
					return failure(id, "goal_progress", err)
				}
				r := s.GoalReport(g, today)
				return response(id, "goal_progress", map[string]any{
					"goal":       r.Goal,
					"progress":   r.Progress,
					"projection": r.Projection,
				})
			},
		},
	}
}

func response(id, name string, resp map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: resp}
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return response(id, name, map[string]any{"error": fmt.Sprint(err)})
}
