package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Option represents a selectable option in the selector.
type Option struct {
	Label       string
	Description string
}

// options adapts []Option to fuzzy.Source. Label and description are
// matched as one string separated by a single space.
type options []Option

func (o options) String(i int) string { return o[i].Label + " " + o[i].Description }
func (o options) Len() int            { return len(o) }

// Selector is a fuzzy-filtering list: typing narrows the options, arrow
// keys move the cursor, enter picks the highlighted option.
type Selector struct {
	title     string
	options   options
	filter    textinput.Model
	matches   []fuzzy.Match
	cursor    int
	offset    int
	height    int
	width     int
	showHelp  bool
	keyMap    selectorKeyMap
	styles    selectorStyles
	selected  int
	cancelled bool
	done      bool
}

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type selectorStyles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Match       lipgloss.Style
	Count       lipgloss.Style
	Help        lipgloss.Style
}

func defaultSelectorStyles() selectorStyles {
	return selectorStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "ctrl+k"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "ctrl+j"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewSelector creates a new selector component.
func NewSelector(title string, opts []Option) Selector {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 256
	ti.Focus()

	s := Selector{
		title:    title,
		options:  options(opts),
		filter:   ti,
		selected: -1,
		height:   12,
		width:    80,
		showHelp: true,
		keyMap:   defaultSelectorKeyMap(),
		styles:   defaultSelectorStyles(),
	}
	s.filter.PromptStyle = s.styles.Prompt
	s.refilter()
	return s
}

// WithQuery pre-fills the filter.
func (s Selector) WithQuery(query string) Selector {
	s.filter.SetValue(query)
	s.filter.CursorEnd()
	s.refilter()
	return s
}

// WithHeight sets the number of visible option rows.
func (s Selector) WithHeight(rows int) Selector {
	if rows > 0 {
		s.height = rows
	}
	return s
}

// WithShowHelp enables or disables the help text.
func (s Selector) WithShowHelp(show bool) Selector {
	s.showHelp = show
	return s
}

// refilter recomputes the visible matches from the filter value.
// An empty filter shows every option in its original order.
func (s *Selector) refilter() {
	query := strings.TrimSpace(s.filter.Value())
	if query == "" {
		s.matches = make([]fuzzy.Match, len(s.options))
		for i := range s.options {
			s.matches[i] = fuzzy.Match{Str: s.options.String(i), Index: i}
		}
	} else {
		s.matches = fuzzy.FindFrom(query, s.options)
	}
	s.cursor = 0
	s.offset = 0
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Up):
			s.move(-1)
			return s, nil
		case key.Matches(msg, s.keyMap.Down):
			s.move(1)
			return s, nil
		case key.Matches(msg, s.keyMap.Select):
			if len(s.matches) == 0 {
				return s, nil
			}
			s.selected = s.matches[s.cursor].Index
			s.done = true
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.Quit):
			s.cancelled = true
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if rows := msg.Height - 4; rows > 0 && rows < s.height {
			s.height = rows
		}
		return s, nil
	}

	before := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.filter.Value() != before {
		s.refilter()
	}
	return s, cmd
}

func (s *Selector) move(delta int) {
	if len(s.matches) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.matches) {
		s.cursor = len(s.matches) - 1
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
}

// View implements tea.Model.
func (s Selector) View() string {
	if s.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(s.styles.Title.Render(s.title))
	b.WriteString(" ")
	b.WriteString(s.styles.Count.Render(fmt.Sprintf("%d/%d", len(s.matches), len(s.options))))
	b.WriteString("\n")
	b.WriteString(s.filter.View())
	b.WriteString("\n")

	end := s.offset + s.height
	if end > len(s.matches) {
		end = len(s.matches)
	}
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderMatch(s.matches[i], i == s.cursor))
		b.WriteString("\n")
	}
	if len(s.matches) == 0 {
		b.WriteString(s.styles.Description.Render("  no matches"))
		b.WriteString("\n")
	}

	if s.showHelp {
		b.WriteString(s.styles.Help.Render("↑/↓ navigate • enter open • esc cancel"))
	}

	return b.String()
}

func (s Selector) renderMatch(m fuzzy.Match, current bool) string {
	opt := s.options[m.Index]

	cursor := "  "
	labelStyle := s.styles.Unselected
	if current {
		cursor = "> "
		labelStyle = s.styles.Selected
	}

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = true
	}
	descStart := len(opt.Label) + 1

	label := highlight(opt.Label, 0, matched, labelStyle, s.styles.Match)
	desc := highlight(opt.Description, descStart, matched, s.styles.Description, s.styles.Match)

	return cursor + label + "  " + desc
}

// highlight renders text with the bytes whose offset (plus base) is in
// matched drawn in the match style.
func highlight(text string, base int, matched map[int]bool, normal, hit lipgloss.Style) string {
	if len(matched) == 0 {
		return normal.Render(text)
	}
	var b strings.Builder
	for i, r := range text {
		if matched[base+i] {
			b.WriteString(hit.Render(string(r)))
			continue
		}
		b.WriteString(normal.Render(string(r)))
	}
	return b.String()
}

// Selected returns the index of the chosen option, or -1 if none.
func (s Selector) Selected() int {
	return s.selected
}

// Cancelled returns true if the user cancelled the selection.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// Query returns the current filter text.
func (s Selector) Query() string {
	return s.filter.Value()
}

// Visible returns the indexes of the options currently shown, best match first.
func (s Selector) Visible() []int {
	out := make([]int, len(s.matches))
	for i, m := range s.matches {
		out[i] = m.Index
	}
	return out
}
