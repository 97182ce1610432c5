package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConform(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"complete tip", tipJSON, true},
		{"missing mnemonic", `{"summary":"s","mouth_position":"m"}`, false},
		{"extra field", `{"summary":"s","mouth_position":"m","mnemonic":"x","ipa":"pa:ɭ"}`, false},
		{"summary not a string", `{"summary":3,"mouth_position":"m","mnemonic":"x"}`, false},
		{"prose instead of JSON", `Curl your tongue for paaL.`, false},
		{"array", `[]`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conform(BackendFake, tipFormat, json.RawMessage(tt.raw))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, Malformed, kind)

			var f *Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tt.raw, string(f.Raw))
		})
	}
}

func TestConform_NoFormatAcceptsText(t *testing.T) {
	assert.NoError(t, conform(BackendFake, nil, json.RawMessage("plain words")))
}

func TestConform_BrokenSchema(t *testing.T) {
	broken := &Format{Name: "broken-tip", Schema: map[string]any{"type": 12}}
	err := conform(BackendFake, broken, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-tip")
}

func TestCompiledIsCachedByName(t *testing.T) {
	first, err := compiled(tipFormat)
	require.NoError(t, err)
	second, err := compiled(tipFormat)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
