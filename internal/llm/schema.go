package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemas holds compiled formats keyed by name. A format's schema is
// fixed for the life of the process, so the first compile wins.
var schemas = struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}{byName: map[string]*jsonschema.Schema{}}

func compiled(f *Format) (*jsonschema.Schema, error) {
	schemas.Lock()
	defer schemas.Unlock()
	if s, ok := schemas.byName[f.Name]; ok {
		return s, nil
	}

	doc, err := asJSONValue(f.Schema)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", f.Name, err)
	}
	url := "mem://formats/" + f.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("schema %q: %w", f.Name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", f.Name, err)
	}
	schemas.byName[f.Name] = s
	return s, nil
}

// asJSONValue round-trips v through encoding/json into the value shapes
// the validator expects (json.Number for numbers).
func asJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// conform checks raw against f. A nil f accepts anything.
func conform(backend string, f *Format, raw json.RawMessage) error {
	if f == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return malformed(backend, raw, "not JSON: %w", err)
	}
	s, err := compiled(f)
	if err != nil {
		return malformed(backend, raw, "%w", err)
	}
	if err := s.Validate(doc); err != nil {
		return malformed(backend, raw, "%s: %w", f.Name, err)
	}
	return nil
}
