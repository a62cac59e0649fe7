package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vvka-141/quickproj/internal/tui"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// Printer renders command output. Results go to out; status lines,
// warnings and hints go to errOut so results can be piped.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a printer writing to the given streams.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// NewStdPrinter creates a printer on stdout and stderr.
func NewStdPrinter() *Printer {
	return NewPrinter(os.Stdout, os.Stderr)
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), fmt.Sprintf(format, args...))
}

// Warning prints a non-fatal problem.
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "%s %s\n", tui.WarningStyle.Render(tui.SymbolWarning), fmt.Sprintf(format, args...))
}

// Status prints a dimmed progress line.
func (p *Printer) Status(format string, args ...interface{}) {
	fmt.Fprintln(p.errOut, tui.HintStyle.Render(fmt.Sprintf(format, args...)))
}

// NoRootsHint explains how to register the first root.
func (p *Printer) NoRootsHint() {
	p.Warning("No root paths configured.")
	fmt.Fprintln(p.errOut)
	fmt.Fprintln(p.errOut, "Add a search path first:")
	fmt.Fprintf(p.errOut, "  %s %s\n", tui.NameStyle.Render(quickproj.AppName+" add"), tui.HintStyle.Render("~/src"))
	fmt.Fprintf(p.errOut, "  %s %s\n", tui.NameStyle.Render(quickproj.AppName+" add"), tui.HintStyle.Render("~/projects"))
}

// NoProjectsHint explains what makes a directory a project.
func (p *Printer) NoProjectsHint(markers []string) {
	p.Warning("No projects found in registered paths.")
	fmt.Fprintln(p.errOut)
	fmt.Fprintln(p.errOut, "Check if your paths contain projects with markers like:")
	shown := markers
	if len(shown) > 4 {
		shown = shown[:4]
	}
	fmt.Fprintf(p.errOut, "  %s, etc.\n", strings.Join(shown, ", "))
}

// RootFailures reports roots that could not be scanned.
func (p *Printer) RootFailures(failures []quickproj.RootFailure) {
	for _, f := range failures {
		p.Warning("Skipping root %s: %v", tui.ShortenHome(f.Root), f.Err)
	}
}

// ScanSummary prints "N projects found in Xms".
func (p *Printer) ScanSummary(count int, elapsed time.Duration) {
	fmt.Fprintf(p.errOut, "%s %s projects found in %dms\n",
		tui.SuccessStyle.Render(tui.SymbolCheck),
		tui.NameStyle.Render(fmt.Sprint(count)),
		elapsed.Milliseconds())
}

// Projects prints the detected projects, one per line.
func (p *Printer) Projects(projects quickproj.ProjectSet) {
	if projects.IsEmpty() {
		fmt.Fprintln(p.out, tui.WarningStyle.Render("No projects found."))
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, tui.TitleStyle.Render("Projects:"))
	fmt.Fprintln(p.out)

	width := 0
	for _, project := range projects.Projects() {
		if len(project.Name) > width {
			width = len(project.Name)
		}
	}
	for _, project := range projects.Projects() {
		fmt.Fprintf(p.out, "  %s %s  %s\n",
			tui.NameStyle.Render(tui.SymbolBullet),
			tui.NameStyle.Render(fmt.Sprintf("%-*s", width, project.Name)),
			tui.PathStyle.Render(tui.ShortenHome(project.Path)))
	}

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Total: %d projects\n", projects.Len())
}

// PlainProjects prints one canonical path per line, for scripts.
func (p *Printer) PlainProjects(projects quickproj.ProjectSet) {
	for _, path := range projects.Paths() {
		fmt.Fprintln(p.out, path)
	}
}

// Roots prints the registered roots with an existence marker.
func (p *Printer) Roots(roots []string, exists func(string) bool) {
	if len(roots) == 0 {
		fmt.Fprintln(p.out, tui.WarningStyle.Render("No root paths configured."))
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Add a path with:")
		fmt.Fprintf(p.out, "  %s %s\n", tui.NameStyle.Render(quickproj.AppName+" add"), tui.HintStyle.Render("<PATH>"))
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, tui.TitleStyle.Render("Registered paths:"))
	fmt.Fprintln(p.out)
	for i, root := range roots {
		status := tui.SuccessStyle.Render(tui.SymbolCheck)
		if !exists(root) {
			status = tui.ErrorStyle.Render(tui.SymbolCross)
		}
		fmt.Fprintf(p.out, "  %s %d. %s\n", status, i+1, tui.ShortenHome(root))
	}
	fmt.Fprintln(p.out)
}

// ConfigView is the resolved configuration as shown by the config command.
type ConfigView struct {
	Path             string
	Exists           bool
	Editor           string
	EditorSource     string
	MaxDepth         int
	RootPaths        []string
	ProjectMarkers   []string
	ExcludeDirs      []string
	RespectGitignore bool
}

// Config prints the resolved configuration and where it came from.
func (p *Printer) Config(view ConfigView) {
	exists := tui.WarningStyle.Render("No (using defaults)")
	if view.Exists {
		exists = tui.SuccessStyle.Render("Yes")
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, tui.TitleStyle.Render("Configuration:"))
	fmt.Fprintln(p.out)
	p.field("Path", tui.NameStyle.Render(view.Path))
	p.field("Exists", exists)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, tui.TitleStyle.Render("Current settings:"))
	fmt.Fprintln(p.out)
	p.field("Editor", fmt.Sprintf("%s %s", tui.NameStyle.Render(view.Editor), tui.HintStyle.Render("("+view.EditorSource+")")))
	p.field("Max depth", fmt.Sprint(view.MaxDepth))
	p.field("Roots", fmt.Sprintf("%d configured", len(view.RootPaths)))
	p.field("Markers", strings.Join(view.ProjectMarkers, " "))
	p.field("Exclude", strings.Join(view.ExcludeDirs, " "))
	p.field("Gitignore", fmt.Sprint(view.RespectGitignore))
	fmt.Fprintln(p.out)
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", tui.LabelStyle.Render(fmt.Sprintf("%-10s", label+":")), value)
}

// Opening announces the project being launched.
func (p *Printer) Opening(project quickproj.Project, editor string) {
	fmt.Fprintf(p.errOut, "Opening %s with %s...\n",
		tui.NameStyle.Render(project.Name), tui.SuccessStyle.Render(editor))
}

// Cancelled reports an aborted selection.
func (p *Printer) Cancelled() {
	fmt.Fprintln(p.errOut, tui.HintStyle.Render("Selection cancelled."))
}
