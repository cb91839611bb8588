package shell

import (
	"context"
	"fmt"
	"io"

	"spacerun/internal/ports"
)

// Printer implements ports.CommandRunner by writing the command line instead of running it.
type Printer struct {
	w io.Writer
}

// Compile-time interface verification
var _ ports.CommandRunner = (*Printer)(nil)

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Start writes command followed by a newline.
func (p *Printer) Start(_ context.Context, command string) error {
	_, err := fmt.Fprintln(p.w, command)
	return err
}
