package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(special(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(special(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
	m, _ = m.Update(special(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up at top = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(special(tea.KeyEnter))
	if !ran {
		t.Error("expected action to run on Enter")
	}
}

func TestMenu_SetDisabledMovesCursor(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B"}})
	m.Selected = 1
	m.SetDisabled(1, true)
	if m.Selected != 0 {
		t.Errorf("selection = %d, want 0", m.Selected)
	}
	if !m.DisabledSet()[1] {
		t.Error("expected item 1 in disabled set")
	}
	if got := strings.Join(m.Labels(), ","); got != "A,B" {
		t.Errorf("Labels = %q", got)
	}
}

func TestChoice_NumberKeysCommit(t *testing.T) {
	c := NewChoice([]ChoiceOption{{Label: "paal"}, {Label: "paaL"}})

	c, picked := c.Update(key('2'))
	if picked != 1 || c.Selected != 1 {
		t.Errorf("picked = %d, selected = %d; want 1, 1", picked, c.Selected)
	}

	_, picked = c.Update(key('3'))
	if picked != -1 {
		t.Errorf("out-of-range number key picked %d", picked)
	}
}

func TestChoice_CursorAndEnter(t *testing.T) {
	c := NewChoice([]ChoiceOption{{Label: "a"}, {Label: "b"}})

	c, picked := c.Update(special(tea.KeyDown))
	if picked != -1 || c.Selected != 1 {
		t.Fatalf("down: picked = %d, selected = %d", picked, c.Selected)
	}
	c, _ = c.Update(special(tea.KeyDown))
	if c.Selected != 1 {
		t.Errorf("down past end moved cursor to %d", c.Selected)
	}
	_, picked = c.Update(special(tea.KeyEnter))
	if picked != 1 {
		t.Errorf("enter picked %d, want 1", picked)
	}
}

func TestChoice_RevealFreezesInput(t *testing.T) {
	c := NewChoice([]ChoiceOption{{Label: "a"}, {Label: "b"}})
	c.Reveal(0, 1)

	if !c.Revealed() {
		t.Fatal("expected revealed")
	}
	_, picked := c.Update(key('1'))
	if picked != -1 {
		t.Errorf("revealed choice accepted input: %d", picked)
	}

	view := c.View(30)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("revealed view should mark both options:\n%s", view)
	}
}

func TestProgressBar_View(t *testing.T) {
	bar := NewProgressBar("Mastered", Ratio(1, 4), true, 40)
	view := bar.View()
	if !strings.Contains(view, "Mastered") || !strings.Contains(view, "25%") {
		t.Errorf("unexpected bar: %q", view)
	}
	if Ratio(3, 0) != 0 {
		t.Error("Ratio with zero total should be 0")
	}
}

func TestTextInput_ReportsChange(t *testing.T) {
	ti := NewTextInput("Search", 20)

	ti, _, changed := ti.Update(key('p'))
	if !changed || ti.Value() != "p" {
		t.Errorf("changed = %v, value = %q", changed, ti.Value())
	}

	ti, _, changed = ti.Update(special(tea.KeyLeft))
	if changed {
		t.Error("cursor move should not report a change")
	}

	ti.SetValue("")
	if ti.Value() != "" {
		t.Errorf("SetValue did not clear: %q", ti.Value())
	}
}

func TestArcadeMenu_DimsDisabled(t *testing.T) {
	out := ArcadeMenu([]string{"PRACTICE", "REVIEW"}, 0, map[int]bool{1: true}, 40)
	if !strings.Contains(out, "▸ PRACTICE") {
		t.Errorf("selected item not marked:\n%s", out)
	}
	if strings.Contains(out, "▸ REVIEW") {
		t.Errorf("disabled item marked selected:\n%s", out)
	}
}
