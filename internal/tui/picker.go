package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/quickproj/internal/tui/components"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// ProjectPicker is the interactive quickproj.Selector. It renders on
// stderr so stdout stays free for piping.
type ProjectPicker struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

// NewProjectPicker creates a picker attached to the process terminal.
func NewProjectPicker() *ProjectPicker {
	return &ProjectPicker{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: IsInteractive,
	}
}

// Select implements quickproj.Selector.
func (p *ProjectPicker) Select(ctx context.Context, projects quickproj.ProjectSet, query string) (quickproj.Selection, error) {
	if projects.IsEmpty() {
		return quickproj.Selection{Cancelled: true}, nil
	}
	if !p.interactive() {
		return quickproj.Selection{}, quickproj.ErrNotInteractive
	}

	opts := make([]components.Option, projects.Len())
	for i := range opts {
		project := projects.At(i)
		opts[i] = components.Option{
			Label:       project.Name,
			Description: ShortenHome(project.Path),
		}
	}

	selector := components.NewSelector("Open project", opts).WithQuery(query)
	program := tea.NewProgram(selector,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	model, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return quickproj.Selection{}, ctx.Err()
		}
		return quickproj.Selection{}, fmt.Errorf("project picker failed: %w", err)
	}

	result, ok := model.(components.Selector)
	if !ok || result.Cancelled() || result.Selected() < 0 {
		return quickproj.Selection{Cancelled: true}, nil
	}
	return quickproj.Selection{Project: projects.At(result.Selected())}, nil
}

// Verify ProjectPicker implements the interface at compile time
var _ quickproj.Selector = (*ProjectPicker)(nil)
