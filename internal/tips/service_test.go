package tips

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/llm"
	"github.com/abhisek/sabdam/internal/session"
)

func validTipJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "paaL ends in a retroflex L, paal in a plain l.",
		"mouth_position": "Curl the tongue tip back to touch the roof of the mouth.",
		"mnemonic": "Milk makes you curl up: paaL."
	}`)
}

func testInput(t *testing.T) Input {
	t.Helper()
	lex := lexicon.Default()
	in, err := FromPair(lex, lex.Pairs()[0].ID)
	require.NoError(t, err)
	return in
}

func TestService_GeneratesTip(t *testing.T) {
	fake := llm.NewFake(llm.Scripted{JSON: validTipJSON()})
	svc := NewService(fake, DefaultConfig(), nil)

	tip, err := svc.Tip(context.Background(), testInput(t))
	require.NoError(t, err)

	assert.Contains(t, tip.Summary, "retroflex")
	assert.NotEmpty(t, tip.MouthPosition)
	assert.NotEmpty(t, tip.Mnemonic)
	assert.Equal(t, "fake", tip.Model)
}

func TestService_RequestShape(t *testing.T) {
	fake := llm.NewFake(llm.Scripted{JSON: validTipJSON()})
	svc := NewService(fake, DefaultConfig(), nil)
	in := testInput(t)

	_, err := svc.Tip(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, fake.Prompts(), 1)
	p := fake.Prompts()[0]
	assert.Equal(t, "pronunciation-tip", p.Purpose)
	assert.Same(t, TipSchema, p.Format)
	assert.Equal(t, DefaultConfig().MaxTokens, p.MaxTokens)
	msg := p.Input
	assert.Contains(t, msg, in.Target.Forms.Transliteration)
	assert.Contains(t, msg, in.Other.Forms.Transliteration)
	assert.Contains(t, msg, in.Reason)
}

func TestService_CachesPerPairAndTarget(t *testing.T) {
	fake := llm.NewFake(
		llm.Scripted{JSON: validTipJSON()},
		llm.Scripted{JSON: validTipJSON()},
	)
	svc := NewService(fake, DefaultConfig(), nil)
	in := testInput(t)

	first, err := svc.Tip(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Tip(context.Background(), in)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Len(t, fake.Prompts(), 1)

	flipped := in
	flipped.Target, flipped.Other = in.Other, in.Target
	_, err = svc.Tip(context.Background(), flipped)
	require.NoError(t, err)
	assert.Len(t, fake.Prompts(), 2)
}

func TestService_BackendError(t *testing.T) {
	fake := llm.NewFake(llm.Scripted{Err: &llm.Failure{Kind: llm.RateLimited, Err: errors.New("quota")}})
	svc := NewService(fake, DefaultConfig(), nil)

	_, err := svc.Tip(context.Background(), testInput(t))
	require.Error(t, err)
	kind, ok := llm.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, llm.RateLimited, kind)
}

func TestService_FailedTipIsNotCached(t *testing.T) {
	fake := llm.NewFake(
		llm.Scripted{JSON: json.RawMessage(`{"summary":"curl"}`)},
		llm.Scripted{JSON: validTipJSON()},
	)
	svc := NewService(fake, DefaultConfig(), nil)
	in := testInput(t)

	_, err := svc.Tip(context.Background(), in)
	kind, _ := llm.KindOf(err)
	assert.Equal(t, llm.Malformed, kind)

	tip, err := svc.Tip(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, tip.Mnemonic)
}

func TestService_EmptySummaryRejected(t *testing.T) {
	fake := llm.NewFake(llm.Scripted{
		JSON: json.RawMessage(`{"summary":"  ","mouth_position":"x","mnemonic":"y"}`),
	})
	svc := NewService(fake, DefaultConfig(), nil)

	_, err := svc.Tip(context.Background(), testInput(t))
	assert.Error(t, err)
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Tip(context.Background(), testInput(t))
	assert.ErrorIs(t, err, ErrDisabled)

	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())
}

func TestFromPair_Unknown(t *testing.T) {
	_, err := FromPair(lexicon.Default(), "pair-999")
	assert.ErrorIs(t, err, ErrUnknownPair)
}

func TestFromQuestion(t *testing.T) {
	q := session.Question{
		ID:             "question-0",
		PairID:         "pair-1",
		CorrectWord:    lexicon.Word{ID: "a"},
		ConfusableWord: lexicon.Word{ID: "b"},
		Reason:         "l vs L",
	}
	in := FromQuestion(q)
	assert.Equal(t, Input{PairID: "pair-1", Target: q.CorrectWord, Other: q.ConfusableWord, Reason: "l vs L"}, in)
}

func TestBuildUserMessage_IncludesExample(t *testing.T) {
	in := Input{
		Target: lexicon.Word{
			Forms:    lexicon.Forms{Transliteration: "paaL", NativeScript: "പാൾ"},
			Meaning:  "milk",
			Examples: []lexicon.Example{{Transliteration: "paaL kudikku", Translation: "drink milk"}},
		},
		Other: lexicon.Word{Forms: lexicon.Forms{Transliteration: "paal"}},
	}
	msg := buildUserMessage(in)
	assert.True(t, strings.Contains(msg, "paaL kudikku"), msg)
	assert.NotContains(t, msg, "Known difference")
}
