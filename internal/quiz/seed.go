package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// seedSchema describes a seed file: a list of items with exactly four
// options each. Empty strings are allowed here; Submit rejects them.
var seedSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": OptionCount,
						"maxItems": OptionCount,
					},
					"correctAnswer": map[string]any{"type": "string"},
				},
				"required":             []any{"question", "options", "correctAnswer"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"items"},
}

const seedSchemaURL = "schema://quiz-seed.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func seedValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects parsed JSON values, not Go-typed literals.
		defBytes, err := json.Marshal(seedSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(seedSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(seedSchemaURL)
	})
	return compiled, compileErr
}

type seedFile struct {
	Items []seedItem `json:"items"`
}

type seedItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// LoadSeed reads a YAML seed file of quiz items.
func LoadSeed(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates YAML seed content.
func ParseSeed(data []byte) ([]Item, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}

	// Round-trip through JSON so the validator and decoder see plain JSON
	// values regardless of how YAML typed the scalars.
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert seed to JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(js, &doc); err != nil {
		return nil, fmt.Errorf("convert seed to JSON: %w", err)
	}

	sch, err := seedValidator()
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	var sf seedFile
	if err := json.Unmarshal(js, &sf); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	items := make([]Item, 0, len(sf.Items))
	for _, si := range sf.Items {
		it := Item{Question: si.Question, CorrectAnswer: si.CorrectAnswer}
		copy(it.Options[:], si.Options)
		items = append(items, it)
	}
	return items, nil
}
