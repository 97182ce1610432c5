package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/llm"
	"github.com/abhisek/sabdam/internal/store"
	"github.com/abhisek/sabdam/internal/tips"
)

// isolate points config and data lookups at temp dirs and clears any
// LLM keys from the environment.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{
		"SABDAM_DB", "SABDAM_LLM_PROVIDER", "SABDAM_LOG_LEVEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return filepath.Join(t.TempDir(), "sabdam.db")
}

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--db", db))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	db := isolate(t)
	out, err := run(t, db, "version")
	require.NoError(t, err)
	assert.Equal(t, "sabdam (devel)\n", out)
}

func TestDifficultLifecycle(t *testing.T) {
	db := isolate(t)

	out, err := run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No difficult words.")

	_, err = run(t, db, "difficult", "add", "peRu")
	require.NoError(t, err)
	_, err = run(t, db, "difficult", "add", "aana")
	require.NoError(t, err)

	out, err = run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "peRu")
	assert.Contains(t, out, "aana")

	_, err = run(t, db, "difficult", "remove", "aana")
	require.NoError(t, err)
	out, err = run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "aana")

	_, err = run(t, db, "difficult", "clear")
	require.NoError(t, err)
	out, err = run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No difficult words.")
}

func TestDifficultAddUnknownWord(t *testing.T) {
	db := isolate(t)
	_, err := run(t, db, "difficult", "add", "zzzz")
	assert.ErrorContains(t, err, "no word matches")
}

func TestExportResetImport(t *testing.T) {
	db := isolate(t)
	backup := filepath.Join(t.TempDir(), "backup.json")

	_, err := run(t, db, "difficult", "add", "paLLi")
	require.NoError(t, err)
	_, err = run(t, db, "export", "--out", backup)
	require.NoError(t, err)

	raw, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"difficultWordIds"`)

	_, err = run(t, db, "reset")
	assert.ErrorIs(t, err, errResetNotConfirmed)

	_, err = run(t, db, "reset", "--yes")
	require.NoError(t, err)
	out, err := run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No difficult words.")

	out, err = run(t, db, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 sessions, 1 difficult word, 0 word counters.")

	out, err = run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "paLLi")
}

// failWrites installs triggers that make every write to the kv table
// abort, the way a full disk would.
func failWrites(t *testing.T, db string) {
	t.Helper()
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	for _, op := range []string{"INSERT", "UPDATE"} {
		_, err := st.DB().Exec(`CREATE TRIGGER fail_` + strings.ToLower(op) + ` BEFORE ` + op +
			` ON kv BEGIN SELECT RAISE(ABORT, 'disk full'); END`)
		require.NoError(t, err)
	}
}

func TestWriteFailuresAreReported(t *testing.T) {
	db := isolate(t)
	backup := filepath.Join(t.TempDir(), "backup.json")

	_, err := run(t, db, "difficult", "add", "paLLi")
	require.NoError(t, err)
	_, err = run(t, db, "export", "--out", backup)
	require.NoError(t, err)

	failWrites(t, db)

	for _, args := range [][]string{
		{"difficult", "add", "peRu"},
		{"difficult", "remove", "paLLi"},
		{"difficult", "clear"},
		{"import", backup},
		{"reset", "--yes"},
	} {
		out, err := run(t, db, args...)
		if assert.Error(t, err, args) {
			assert.Contains(t, err.Error(), "disk full", args)
		}
		assert.Empty(t, out, args)
	}

	// A no-op edit has nothing to write and still succeeds.
	_, err = run(t, db, "difficult", "add", "paLLi")
	assert.NoError(t, err)

	out, err := run(t, db, "difficult", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "paLLi")
	assert.NotContains(t, out, "peRu")
}

func TestImportRejectsGarbage(t *testing.T) {
	db := isolate(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))

	_, err := run(t, db, "import", bad)
	assert.Error(t, err)
}

func TestStatsAndHistoryEmpty(t *testing.T) {
	db := isolate(t)

	out, err := run(t, db, "stats", "--words")
	require.NoError(t, err)
	assert.Contains(t, out, "Words:     30")
	assert.Contains(t, out, "Sessions:  0")
	assert.Contains(t, out, "Last practised")

	out, err = run(t, db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet.")
}

func TestWordsCommands(t *testing.T) {
	db := isolate(t)

	out, err := run(t, db, "words", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "30 of 30 words")

	out, err = run(t, db, "words", "show", "aaNu")
	require.NoError(t, err)
	assert.Contains(t, out, "Easily confused with:")
	assert.Contains(t, out, "aana")

	out, err = run(t, db, "words", "pairs")
	require.NoError(t, err)
	assert.Contains(t, out, "pair-1")

	out, err = run(t, db, "words", "pairs", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "mirror issue")
}

func TestFindWord(t *testing.T) {
	isolate(t)
	lex := newLexicon(t)

	w, err := findWord(lex, "peru")
	require.NoError(t, err)
	assert.Equal(t, "peru", w.Forms.Transliteration)

	w, err = findWord(lex, "peRu")
	require.NoError(t, err)
	assert.Equal(t, "peRu", w.Forms.Transliteration)

	_, err = findWord(lex, "pa")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "matches"))
}

func TestTipCommand(t *testing.T) {
	db := isolate(t)

	_, err := run(t, db, "tip", "no-such-pair")
	assert.ErrorIs(t, err, tips.ErrUnknownPair)

	_, err = run(t, db, "tip", "pair-1")
	assert.ErrorIs(t, err, tips.ErrDisabled)

	// The fake backend starts with nothing scripted, so the request
	// reaches it and comes back as an outage.
	t.Setenv("SABDAM_LLM_PROVIDER", llm.BackendFake)
	_, err = run(t, db, "tip", "pair-1")
	kind, ok := llm.KindOf(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, llm.Unavailable, kind)
}

func newLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	return lexicon.Default()
}
