package tips

import "github.com/abhisek/sabdam/internal/llm"

// TipSchema is the reply format for pronunciation tips.
var TipSchema = &llm.Format{
	Name:        "pronunciation-tip",
	Description: "How to tell apart and pronounce two confusable Malayalam words",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentences on the sound that differs",
			},
			"mouth_position": map[string]any{
				"type":        "string",
				"description": "Where the tongue and lips go for the target sound",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A short memory aid tying the sound to the meaning",
			},
		},
		"required":             []any{"summary", "mouth_position", "mnemonic"},
		"additionalProperties": false,
	},
}
