// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/linsys"
	"github.com/katalvlaran/netflow/network"
)

// Palette.
var (
	colorCyan   = lipgloss.Color("#2CD7C7")
	colorBlue   = lipgloss.Color("#5DADE2")
	colorGreen  = lipgloss.Color("#58D68D")
	colorYellow = lipgloss.Color("#F4D03F")
	colorRed    = lipgloss.Color("#E74C3C")
)

type styles struct {
	section lipgloss.Style
	title   lipgloss.Style
	matrix  lipgloss.Style
	swap    lipgloss.Style
	norm    lipgloss.Style
	elim    lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain, plain, plain}
	}

	return styles{
		section: r.NewStyle().Bold(true).Foreground(colorBlue).
			Border(lipgloss.NormalBorder()).BorderForeground(colorBlue).Padding(0, 1),
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		matrix: r.NewStyle().Foreground(colorCyan),
		swap:   r.NewStyle().Foreground(colorYellow),
		norm:   r.NewStyle().Foreground(colorCyan),
		elim:   r.NewStyle().Foreground(colorBlue),
		ok:     r.NewStyle().Foreground(colorGreen),
		warn:   r.NewStyle().Foreground(colorYellow),
		bad:    r.NewStyle().Foreground(colorRed),
		muted:  r.NewStyle().Faint(true),
	}
}

// Terminal renders to a text stream.
type Terminal struct {
	w      io.Writer
	st     styles
	labels []string
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	color  bool
	labels []string
}

// WithColor enables or disables styling (default enabled; lipgloss still
// drops escape codes when w is not a terminal).
func WithColor(on bool) TerminalOption {
	return func(c *terminalConfig) { c.color = on }
}

// WithLabels names the rows (nodes) in the result section.
func WithLabels(labels []string) TerminalOption {
	return func(c *terminalConfig) { c.labels = append([]string(nil), labels...) }
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	cfg := terminalConfig{color: true}
	for _, o := range opts {
		o(&cfg)
	}

	return &Terminal{
		w:      w,
		st:     newStyles(lipgloss.NewRenderer(w), cfg.color),
		labels: cfg.labels,
	}
}

func (t *Terminal) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(t.w, format, args...)
	return err
}

// Section prints a boxed heading.
func (t *Terminal) Section(title string) error {
	return t.printf("\n%s\n", t.st.section.Render(title))
}

// Matrix prints a titled frame; sep as in Frame.
func (t *Terminal) Matrix(title string, rows [][]float64, sep int) error {
	return t.printf("\n%s\n%s", t.st.title.Render(title+":"),
		t.st.matrix.Render(strings.TrimSuffix(Frame(rows, sep), "\n"))+"\n")
}

// Classification implements Renderer.
func (t *Terminal) Classification(c linsys.Classification) error {
	if err := t.Section("SYSTEM ANALYSIS"); err != nil {
		return err
	}
	verdict := t.st.ok.Render("✓ unique solution")
	switch c.Case {
	case linsys.CaseConsistentUnderdetermined:
		verdict = t.st.warn.Render("ℹ consistent: infinitely many solutions")
	case linsys.CaseInconsistent:
		verdict = t.st.bad.Render("✗ inconsistent: no exact solution")
	}

	return t.printf("  det(A)      %15.6f\n  rank(A)     %15d\n  rank([A|b]) %15d\n  n           %15d\n  %s\n",
		c.Determinant, c.RankA, c.RankAugmented, c.N, verdict)
}

// Step implements Renderer.
func (t *Terminal) Step(st gaussjordan.Step) error {
	style := t.st.elim
	icon := "−"
	switch st.Kind {
	case gaussjordan.Swap:
		style, icon = t.st.swap, "↔"
	case gaussjordan.Normalize:
		style, icon = t.st.norm, "÷"
	}
	if err := t.printf("\n%s %s\n", t.st.muted.Render(fmt.Sprintf("step %d (%s)", st.Index+1, st.Phase)),
		style.Render(icon+" "+st.Label)); err != nil {
		return err
	}
	if st.Matrix == nil {
		return nil
	}

	return t.printf("%s\n", t.st.matrix.Render(
		strings.TrimSuffix(Frame(st.Matrix.RowsCopy(), st.Matrix.Rows()), "\n")))
}

// Result implements Renderer.
func (t *Terminal) Result(res *linsys.Result) error {
	if res == nil {
		return nil
	}
	if err := t.Section("SOLUTION"); err != nil {
		return err
	}
	if res.Method == linsys.MethodNone {
		return t.printf("  empty system, nothing to solve\n")
	}

	if res.Inverse != nil {
		title := "inverse A⁻¹"
		if res.Method == linsys.MethodPseudoInverse {
			title = "pseudo-inverse A⁺"
		}
		if err := t.Matrix(title, res.Inverse.RowsCopy(), 0); err != nil {
			return err
		}
	}

	labels := t.labels
	if len(labels) != len(res.X) {
		labels = make([]string, len(res.X))
		for i := range labels {
			labels[i] = fmt.Sprintf("N%d", i+1)
		}
	}
	ids := make([]network.NodeID, len(labels))
	for i, l := range labels {
		ids[i] = network.NodeID(l)
	}
	flows, err := network.Interpret(ids, res.X)
	if err != nil {
		return err
	}

	if err = t.printf("\n%s\n", t.st.title.Render(fmt.Sprintf("x (%s):", res.Method))); err != nil {
		return err
	}
	for _, f := range flows {
		style := t.st.ok
		if f.Direction == network.Inbound {
			style = t.st.warn
		}
		if err = t.printf("  %s\n", style.Render(fmt.Sprintf("%-6s %12.2f  %s", f.Node, f.Flow, f.Direction))); err != nil {
			return err
		}
	}

	resStyle := t.st.ok
	if res.Classification.Case == linsys.CaseInconsistent {
		resStyle = t.st.bad
	}
	if err = t.printf("\n  residual ‖Ax−b‖₂ = %s\n", resStyle.Render(fmt.Sprintf("%.4e", res.Residual))); err != nil {
		return err
	}

	if err = t.Section("RECOMMENDATIONS"); err != nil {
		return err
	}
	for _, r := range network.Recommend(res.Classification.Case) {
		if err = t.printf("  • %s\n", r); err != nil {
			return err
		}
	}

	return nil
}
