package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etawil/recon"
	"github.com/etawil/recon/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert.
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a back-office operator reconciling partner shares and rebate commissions
			for the current period. He wants figures from the loaded report, the state of the
			booked entries, or an explanation of a difference between a booked and a current total.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume that you know his partner groups, check the report first to
			understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

func NewBookkeeper() *Expert {

	lib := []Function{Summary, BookState, GroupCommission}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's reconciliation
		session: the enriched account report, the commission ledger and the booked entries.
		He can compute the relevant figures about the current period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's reconciliation session.
				You know how to use the Tools to extract relevant information about the report,
				the commissions and the book.
				You are part of a team of experts, yours is everything about the current session.
				They might ask you questions about it, pardon their approximative language and
				figure out what they meant.

				Use the available tools to get information about
				  - the report summary and grand total
				  - the booked entries and whether they still match
				  - the commission rows of a partner group
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

var Summary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary renders the session summary: totals of the enriched report,
		the carried forward amount, total commissions and the grand total, plus the list
		of confirmed partner groups.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the current session.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		s, err := DecodeSession()
		if err != nil {
			return errorResponse(id, "Summary", err)
		}
		return outputResponse(id, "Summary", renderer.SummaryMarkdown(s))
	},
}

var BookState = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "BookState",
		Description: `BookState lists every booked entry with its frozen amount and kind,
		the current recomputed total for the same group, and whether the entry is still
		confirmed or has gone stale.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of booked entries and their status.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		s, err := DecodeSession()
		if err != nil {
			return errorResponse(id, "BookState", err)
		}
		return outputResponse(id, "BookState", renderer.BookMarkdown(s))
	},
}

var GroupCommission = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "GroupCommission",
		Description: `GroupCommission lists the commission rows of a partner group with
		their lots, rebate and computed commission, and the group's total commission.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"group": {
					Type:        genai.TypeString,
					Description: "The partner group whose commission rows to list.",
				},
			},
			Required: []string{"group"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of the group's commission rows.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		igroup, ok := args["group"]
		if !ok {
			return errorResponse(id, "GroupCommission", fmt.Errorf("missing required argument 'group'"))
		}
		group, ok := igroup.(string)
		if !ok {
			return errorResponse(id, "GroupCommission", fmt.Errorf("argument 'group' is not a string as expected but %T", igroup))
		}
		s, err := DecodeSession()
		if err != nil {
			return errorResponse(id, "GroupCommission", err)
		}
		return outputResponse(id, "GroupCommission", renderer.CommissionMarkdown(s, group))
	},
}

// SessionFile is the session file the agent's functions read.
// The assist command sets it to the application's session file.
var SessionFile = "session.jsonl"

// DecodeSession decodes the session from the agent's session file.
// If the file does not exist, it returns a new empty session.
func DecodeSession() (*recon.Session, error) {
	f, err := os.Open(SessionFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// If the file doesn't exist, it's an empty session.
			return recon.NewSession(), nil
		}
		return nil, fmt.Errorf("could not open session file %q: %w", SessionFile, err)
	}
	defer f.Close()

	s, err := recon.DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode session file %q: %w", SessionFile, err)
	}
	return s, nil
}
