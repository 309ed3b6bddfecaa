// Package output carries the stdout printer through a context.
//
// Everything a user might pipe or parse (tables, generated scripts, JSON and
// YAML) goes through the Printer. Diagnostics go to stderr via package log.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Stdout returns os.Stdout wrapped so ANSI styling is downsampled to what
// the terminal supports, or stripped when stdout is not a terminal or
// NO_COLOR is set.
func Stdout() io.Writer {
	return colorprofile.NewWriter(os.Stdout, os.Environ())
}

// WithPrinter attaches a Printer writing to w.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the attached Printer, or one writing to plain
// os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer, for encoders.
func (p *Printer) Writer() io.Writer {
	return p.w
}
