package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/giya/cashbook"
	"github.com/giya/cashbook/docs"
	"github.com/giya/cashbook/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small business with a dual-currency cash book, US Dollars and
			Congolese Francs. He is here primarily to understand his cash position, his
			daily flows and where his money goes.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates an expert grounded by web search for general business
// questions such as exchange rates or local regulations.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a small-business advisor.
		Very well aware of exchange rates, local prices and business practice in the
		Democratic Republic of Congo. Ask the Advisor whenever you need recent or
		grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in small-business finance. You can search and find about
			anything related to exchange rates, suppliers, markets and regulations.
			You leverage Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the user's cash book.
func NewBookkeeper(store cashbook.Store) *Expert {
	lib := []Function{balanceFunc(store), summaryFunc(store), categoriesFunc(store)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's cash book.
		He can compute balances, daily summaries and per-category totals in both currencies.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's cash book.
				You know how to use the Tools to extract balances, daily summaries and
				category totals. The book holds two currencies, USD and CDF, kept strictly
				separate. You are part of a team of experts, yours is everything recorded
				in the cash book. Pardon their approximative language and figure out what
				they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var dateParameter = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"date": {
			Type: genai.TypeString,
			Description: `The date on which to compute the report. Today is the default.
			Otherwise it uses a flexible date format based on YYYY-MM-DD:

			` + must(docs.GetTopic("dates")),
		},
	},
}

func balanceFunc(store cashbook.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Balance",
			Description: `Balance returns the current USD and CDF balances of the cash book:
			the initial balances plus every recorded transaction.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table with the balance of each currency.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, settings, err := loadBook(store)
			if err != nil {
				return errorResponse(id, "Balance", err)
			}
			b := cashbook.CurrentBalance(settings, ledger.Select())
			return outputResponse(id, "Balance", renderer.BalanceMarkdown(b))
		},
	}
}

func summaryFunc(store cashbook.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary returns the cash book summary of one day: opening balances,
			income, expenses, transfers and closing balances, in both currencies.`,
			Parameters: dateParameter,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the day's flows.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day, err := parseDate(args)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			ledger, settings, err := loadBook(store)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			s := cashbook.NewSummary(settings, ledger.Select(), day)
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(&s))
		},
	}
}

func categoriesFunc(store cashbook.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Categories",
			Description: `Categories returns the totals of the cash book grouped by category,
			in both currencies. Useful to understand where the money goes.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of per-category totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, _, err := loadBook(store)
			if err != nil {
				return errorResponse(id, "Categories", err)
			}
			totals := cashbook.CategoryTotals(ledger.Select())
			return outputResponse(id, "Categories", renderer.CategoryTotalsMarkdown("Totals by Category", totals))
		},
	}
}

func loadBook(store cashbook.Store) (*cashbook.Ledger, cashbook.BalanceSettings, error) {
	ledger, err := store.LoadLedger()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, fmt.Errorf("could not load cash book: %w", err)
	}
	settings, err := store.LoadSettings()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, fmt.Errorf("could not load settings: %w", err)
	}
	return ledger, settings.Balances(), nil
}

func parseDate(args map[string]any) (cashbook.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return cashbook.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return cashbook.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := cashbook.ParseDate(sdate)
	if err != nil {
		return cashbook.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
