// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/netflow/gaussjordan"
)

// DefaultPrompt is shown after every step by a Pager.
const DefaultPrompt = "press Enter to continue..."

// Pager wraps a Renderer and waits for one input line after each step.
// End of input disables further waiting; every other method passes through.
type Pager struct {
	Renderer
	in     *bufio.Reader
	out    io.Writer
	prompt string
	done   bool
}

// NewPager pauses r on lines read from in, printing the prompt to out.
func NewPager(r Renderer, in io.Reader, out io.Writer) *Pager {
	return &Pager{Renderer: r, in: bufio.NewReader(in), out: out, prompt: DefaultPrompt}
}

// Step renders st, then blocks until a line (or EOF) arrives.
func (p *Pager) Step(st gaussjordan.Step) error {
	if err := p.Renderer.Step(st); err != nil {
		return err
	}
	if p.done {
		return nil
	}
	if _, err := fmt.Fprintf(p.out, "%s", p.prompt); err != nil {
		return err
	}
	if _, err := p.in.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			p.done = true
			return nil
		}
		return err
	}

	return nil
}
