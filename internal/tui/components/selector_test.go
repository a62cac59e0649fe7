package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func projectOptions() []Option {
	return []Option{
		{Label: "api-server", Description: "~/work/api-server"},
		{Label: "web", Description: "~/work/web"},
		{Label: "cli", Description: "~/tools/cli"},
		{Label: "notes", Description: "~/notes"},
	}
}

func typeText(s Selector, text string) Selector {
	model, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return model.(Selector)
}

func press(s Selector, keyType tea.KeyType) (Selector, tea.Cmd) {
	model, cmd := s.Update(tea.KeyMsg{Type: keyType})
	return model.(Selector), cmd
}

func TestSelector_EmptyFilterShowsAllInOrder(t *testing.T) {
	s := NewSelector("Open project", projectOptions())

	got := s.Visible()
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() = %v, want %v", got, want)
		}
	}
}

func TestSelector_TypingFilters(t *testing.T) {
	s := NewSelector("Open project", projectOptions())
	s = typeText(s, "cli")

	if s.Query() != "cli" {
		t.Fatalf("Query() = %q, want %q", s.Query(), "cli")
	}
	visible := s.Visible()
	if len(visible) == 0 || visible[0] != 2 {
		t.Errorf("expected cli first, got %v", visible)
	}
}

func TestSelector_MatchesPath(t *testing.T) {
	s := NewSelector("Open project", projectOptions()).WithQuery("tools")

	visible := s.Visible()
	if len(visible) != 1 || visible[0] != 2 {
		t.Errorf("expected only the project under tools, got %v", visible)
	}
}

func TestSelector_NoMatches(t *testing.T) {
	s := NewSelector("Open project", projectOptions()).WithQuery("zzzz")

	if len(s.Visible()) != 0 {
		t.Fatalf("expected no matches, got %v", s.Visible())
	}
	if !strings.Contains(s.View(), "no matches") {
		t.Error("view should say there are no matches")
	}

	s, cmd := press(s, tea.KeyEnter)
	if cmd != nil || s.Selected() != -1 {
		t.Error("enter with no matches should do nothing")
	}
}

func TestSelector_NavigateAndSelect(t *testing.T) {
	s := NewSelector("Open project", projectOptions())

	s, _ = press(s, tea.KeyDown)
	s, _ = press(s, tea.KeyDown)
	s, _ = press(s, tea.KeyUp)
	s, cmd := press(s, tea.KeyEnter)

	if cmd == nil {
		t.Fatal("expected quit command after select")
	}
	if s.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", s.Selected())
	}
	if s.Cancelled() {
		t.Error("selection should not be cancelled")
	}
	if s.View() != "" {
		t.Error("view should be cleared once done")
	}
}

func TestSelector_CursorClamps(t *testing.T) {
	s := NewSelector("Open project", projectOptions()).WithHeight(2)

	s, _ = press(s, tea.KeyUp)
	for i := 0; i < 10; i++ {
		s, _ = press(s, tea.KeyDown)
	}
	s, _ = press(s, tea.KeyEnter)

	if s.Selected() != 3 {
		t.Errorf("Selected() = %d, want last option", s.Selected())
	}
}

func TestSelector_Escape(t *testing.T) {
	s := NewSelector("Open project", projectOptions())

	s, cmd := press(s, tea.KeyEsc)

	if cmd == nil || !s.Cancelled() || s.Selected() != -1 {
		t.Error("escape should cancel without a selection")
	}
}

func TestSelector_ViewListsOptions(t *testing.T) {
	view := NewSelector("Open project", projectOptions()).WithShowHelp(false).View()

	for _, want := range []string{"Open project", "4/4", "api-server", "~/work/web"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
