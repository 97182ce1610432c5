package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/words.json
var wordsJSON []byte

//go:embed data/pairs.json
var pairsJSON []byte

var wordsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string", "minLength": 1},
			"word": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inTranslit":     map[string]any{"type": "string", "minLength": 1},
					"inNativeScript": map[string]any{"type": "string"},
				},
				"required": []any{"inTranslit", "inNativeScript"},
			},
			"meaning":        map[string]any{"type": "string", "minLength": 1},
			"figureOfSpeech": map[string]any{"type": "string"},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"inTranslit":     map[string]any{"type": "string"},
						"translation":    map[string]any{"type": "string"},
						"inNativeScript": map[string]any{"type": "string"},
					},
					"required": []any{"inTranslit", "translation"},
				},
			},
			"wordLevel":     map[string]any{"type": "string"},
			"pronunciation": map[string]any{"type": "string"},
		},
		"required": []any{"id", "word", "meaning"},
	},
}

var pairsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"wordId":           map[string]any{"type": "string", "minLength": 1},
			"confusableWordId": map[string]any{"type": "string", "minLength": 1},
			"reason":           map[string]any{"type": "string"},
		},
		"required": []any{"id", "wordId", "confusableWordId", "reason"},
	},
}

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		defs := map[string]map[string]any{
			"schema://lexicon/words.json": wordsSchema,
			"schema://lexicon/pairs.json": pairsSchema,
		}
		for url, def := range defs {
			// Round-trip through JSON so numbers reach the compiler as float64.
			raw, err := json.Marshal(def)
			if err != nil {
				compileErr = fmt.Errorf("marshal schema %s: %w", url, err)
				return
			}
			var parsed any
			if err := json.Unmarshal(raw, &parsed); err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", url, err)
				return
			}
			if err := c.AddResource(url, parsed); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", url, err)
				return
			}
		}
		out := make(map[string]*jsonschema.Schema, len(defs))
		for url := range defs {
			s, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", url, err)
				return
			}
			out[url] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

// Load builds a Lexicon from the JSON word and pair tables. Documents are
// checked against their JSON schema before decoding; the decoded tables
// then go through the same integrity checks as New.
func Load(wordsData, pairsData []byte) (*Lexicon, error) {
	sc, err := schemas()
	if err != nil {
		return nil, err
	}
	if err := checkDocument(sc["schema://lexicon/words.json"], "words", wordsData); err != nil {
		return nil, err
	}
	if err := checkDocument(sc["schema://lexicon/pairs.json"], "pairs", pairsData); err != nil {
		return nil, err
	}

	var words []Word
	if err := json.Unmarshal(wordsData, &words); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	var pairs []ConfusablePair
	if err := json.Unmarshal(pairsData, &pairs); err != nil {
		return nil, fmt.Errorf("decode pairs: %w", err)
	}
	return New(words, pairs)
}

func checkDocument(s *jsonschema.Schema, name string, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%s do not match schema: %w", name, err)
	}
	return nil
}
