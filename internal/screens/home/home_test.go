package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/progress"
	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/screens/practice"
	"github.com/abhisek/sabdam/internal/screens/progressview"
	"github.com/abhisek/sabdam/internal/store"
)

func newHome(t *testing.T) (*HomeScreen, *progress.Store) {
	t.Helper()
	ps := progress.NewStore(store.NewMemory(), nil)
	return New(screen.Deps{Lexicon: lexicon.Default(), Progress: ps}), ps
}

func press(h *HomeScreen, code rune) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestReviewDisabledWithoutDifficultWords(t *testing.T) {
	h, _ := newHome(t)
	assert.True(t, h.menu.Items[itemReview].Disabled)

	press(h, tea.KeyDown)
	assert.Equal(t, itemProgress, h.menu.Selected, "cursor should skip the disabled item")
}

func TestReviewEnabledAfterResume(t *testing.T) {
	h, ps := newHome(t)
	ps.AddDifficultWord(context.Background(), lexicon.Default().Pairs()[0].WordID)

	h.Resume()
	assert.False(t, h.menu.Items[itemReview].Disabled)
	assert.Equal(t, 1, h.stats.difficult)
}

func TestReviewStaysDisabledForWordsOutsideLibrary(t *testing.T) {
	h, ps := newHome(t)
	ps.AddDifficultWord(context.Background(), "retired-word")

	h.Resume()
	assert.Equal(t, 1, h.stats.difficult)
	assert.True(t, h.menu.Items[itemReview].Disabled)
}

func TestProgressChangedRefreshes(t *testing.T) {
	h, ps := newHome(t)
	ps.SaveSessionResult(context.Background(), 3, 4)

	h.Update(screen.ProgressChangedMsg{})
	assert.Equal(t, 1, h.stats.sessions)
	assert.True(t, h.stats.hasLast)
	assert.Equal(t, 75, h.stats.lastPercent)
}

func TestEnterPushesPractice(t *testing.T) {
	h, _ := newHome(t)
	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &practice.PracticeScreen{}, msg.Screen)
}

func TestProgressItemPushesProgressView(t *testing.T) {
	h, _ := newHome(t)
	press(h, tea.KeyDown)
	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &progressview.ProgressScreen{}, msg.Screen)
}

func TestExitQuits(t *testing.T) {
	h, _ := newHome(t)
	h.menu.Selected = itemExit
	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(stats{}))
	assert.Equal(t, MascotCelebrating, mascotFor(stats{hasLast: true, lastPercent: 100}))
	assert.Equal(t, MascotAlert, mascotFor(stats{difficult: 3}))
}

func TestView(t *testing.T) {
	h, _ := newHome(t)
	assert.NotEmpty(t, h.View(120, 40))
	assert.NotEmpty(t, h.View(80, 20))
}
