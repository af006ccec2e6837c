package coach

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Function is a tool the model can call.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Tools is a set of functions offered to the model.
type Tools []Function

// Declarations returns the declarations of the functions, for the model.
func (t Tools) Declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(t))
	for _, f := range t {
		decls = append(decls, f.Declaration())
	}
	return decls
}

// Call dispatches a function call of the model. An unknown function is
// reported to the model as an error response.
func (t Tools) Call(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	for _, f := range t {
		if f.Declaration().Name == call.Name {
			return f.Call(ctx, call.ID, call.Args)
		}
	}
	return failure(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
}

// Func is a Function made of a declaration and a plain function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}
