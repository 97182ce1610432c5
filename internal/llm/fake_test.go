package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_PlaysScriptInOrder(t *testing.T) {
	f := NewFake(
		Scripted{JSON: []byte(tipJSON), Tokens: Tokens{In: 120, Out: 40}},
		Scripted{Err: &Failure{Kind: RateLimited}},
	)
	ctx := context.Background()

	reply, err := f.Complete(ctx, tipPrompt())
	require.NoError(t, err)
	assert.JSONEq(t, tipJSON, string(reply.JSON))
	assert.Equal(t, "fake", reply.Model)
	assert.Equal(t, 160, reply.Tokens.Total())

	_, err = f.Complete(ctx, tipPrompt())
	kind, _ := KindOf(err)
	assert.Equal(t, RateLimited, kind)

	_, err = f.Complete(ctx, tipPrompt())
	kind, _ = KindOf(err)
	assert.Equal(t, Unavailable, kind, "an exhausted script reads as an outage")

	require.Len(t, f.Prompts(), 3)
	assert.Equal(t, "pronunciation-tip", f.Prompts()[0].Purpose)
}

func TestFake_ChecksFormat(t *testing.T) {
	f := NewFake(Scripted{JSON: []byte(`{"summary":"only a summary"}`)})

	_, err := f.Complete(context.Background(), tipPrompt())
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, Malformed, kind)
}

func TestFailureMessage(t *testing.T) {
	f := &Failure{Kind: RateLimited, Backend: BackendGemini, Err: errors.New("quota")}
	assert.Equal(t, "gemini: rate limited: quota", f.Error())
	assert.ErrorIs(t, f, f.Err)

	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}
