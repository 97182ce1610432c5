package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sabdam/internal/lexicon"
)

func TestGenerate_BundledDataset(t *testing.T) {
	lex := lexicon.Default()
	g := NewGenerator(lex, seeded(1))

	qs, err := g.Generate(5, nil)
	require.NoError(t, err)
	require.Len(t, qs, 5)

	seen := map[string]bool{}
	for i, q := range qs {
		assert.Equal(t, fmt.Sprintf("question-%d", i), q.ID)
		assert.False(t, seen[q.PairID], "pair %s reused", q.PairID)
		seen[q.PairID] = true

		assert.NotEqual(t, q.CorrectWord.ID, q.ConfusableWord.ID)
		_, ok := lex.Word(q.CorrectWord.ID)
		assert.True(t, ok)
		_, ok = lex.Word(q.ConfusableWord.ID)
		assert.True(t, ok)

		p, ok := lex.Pair(q.PairID)
		require.True(t, ok)
		assert.ElementsMatch(t,
			[]string{p.WordID, p.ConfusableWordID},
			[]string{q.CorrectWord.ID, q.ConfusableWord.ID})
		assert.Equal(t, p.Reason, q.Reason)
	}
}

func TestGenerate_CountLargerThanPool(t *testing.T) {
	lex := lexicon.Default()
	qs, err := NewGenerator(lex, seeded(2)).Generate(100, nil)
	require.NoError(t, err)
	assert.Len(t, qs, len(lex.Pairs()))
}

func TestGenerate_InvalidCount(t *testing.T) {
	g := NewGenerator(fixtureLexicon(t), zeroRand{})
	for _, n := range []int{0, -3} {
		_, err := g.Generate(n, nil)
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestGenerate_Restricted(t *testing.T) {
	g := NewGenerator(fixtureLexicon(t), seeded(3))

	qs, err := g.Generate(10, []string{"a"})
	require.NoError(t, err)
	require.Len(t, qs, 2)
	for _, q := range qs {
		assert.Contains(t, []string{"p1", "p2"}, q.PairID)
	}
	assert.Equal(t, 2, g.EligiblePairs([]string{"a"}))
	assert.Equal(t, 3, g.EligiblePairs(nil))
}

func TestGenerate_RestrictedNoMatch(t *testing.T) {
	g := NewGenerator(fixtureLexicon(t), seeded(4))

	qs, err := g.Generate(5, []string{"e", "missing"})
	require.NoError(t, err)
	assert.Empty(t, qs)
}

type brokenRef struct{ *lexicon.Lexicon }

func (b brokenRef) Pairs() []lexicon.ConfusablePair {
	return []lexicon.ConfusablePair{{ID: "bad", WordID: "a", ConfusableWordID: "ghost"}}
}

func TestGenerate_IntegrityError(t *testing.T) {
	g := NewGenerator(brokenRef{fixtureLexicon(t)}, zeroRand{})

	_, err := g.Generate(1, nil)
	require.Error(t, err)

	var ie *IntegrityError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "bad", ie.PairID)
	assert.Equal(t, "ghost", ie.WordID)
	assert.ErrorIs(t, err, lexicon.ErrWordNotFound)
}

func TestGenerate_ZeroRandKeepsPairOrientation(t *testing.T) {
	g := NewGenerator(fixtureLexicon(t), zeroRand{})
	qs, err := g.Generate(3, nil)
	require.NoError(t, err)

	for _, q := range qs {
		switch q.PairID {
		case "p1":
			assert.Equal(t, "a", q.CorrectWord.ID)
		case "p2":
			assert.Equal(t, "b", q.CorrectWord.ID)
		case "p3":
			assert.Equal(t, "c", q.CorrectWord.ID)
		}
	}
}

func TestGenerate_CorrectSideIsBalanced(t *testing.T) {
	lex := fixtureLexicon(t)
	g := NewGenerator(lex, seeded(5))

	const runs = 4000
	first := 0
	for i := 0; i < runs; i++ {
		qs, err := g.Generate(1, nil)
		require.NoError(t, err)
		p, _ := lex.Pair(qs[0].PairID)
		if qs[0].CorrectWord.ID == p.WordID {
			first++
		}
	}
	ratio := float64(first) / runs
	assert.InDelta(t, 0.5, ratio, 0.05, "correct side split = %.3f", ratio)
}

func TestGenerate_ShuffleIsUniform(t *testing.T) {
	g := NewGenerator(fixtureLexicon(t), seeded(6))

	const runs = 6000
	counts := map[string]int{}
	for i := 0; i < runs; i++ {
		qs, err := g.Generate(3, nil)
		require.NoError(t, err)
		key := qs[0].PairID + qs[1].PairID + qs[2].PairID
		counts[key]++
	}
	require.Len(t, counts, 6, "every permutation should appear")
	for perm, n := range counts {
		assert.InDelta(t, runs/6, n, 150, "permutation %s", perm)
	}
}

func TestQuestionOptions_StableOrder(t *testing.T) {
	a := lexicon.Word{ID: "a"}
	b := lexicon.Word{ID: "b"}

	even := Question{ID: "question-0", CorrectWord: a, ConfusableWord: b}
	assert.Equal(t, [2]lexicon.Word{a, b}, even.Options())
	assert.Equal(t, even.Options(), even.Options())

	odd := Question{ID: "question-3", CorrectWord: a, ConfusableWord: b}
	assert.Equal(t, [2]lexicon.Word{b, a}, odd.Options())

	assert.True(t, odd.HasOption("a"))
	assert.False(t, odd.HasOption("c"))
}
