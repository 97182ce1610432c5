package llm

// price is USD per million tokens.
type price struct {
	in, out float64
}

func (p price) cost(t Tokens) float64 {
	return (float64(t.In)*p.in + float64(t.Out)*p.out) / 1e6
}

// prices covers each backend's default model and the ones people
// commonly configure for short tips. Unknown models log without a cost.
var prices = map[string]price{
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5-mini":   {0.25, 2},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},

	"google/gemini-2.0-flash-001": {0.1, 0.4},
	"google/gemini-2.5-flash":     {0.3, 2.5},
	"openai/gpt-4o-mini":          {0.15, 0.6},
	"anthropic/claude-haiku-4.5":  {1, 5},
}

func priceOf(model string) (price, bool) {
	p, ok := prices[model]
	return p, ok
}
