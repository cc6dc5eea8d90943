package swc

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

type entry struct {
	name string
	res  Result
}

// Printer collects one result per input and writes them as
// right-justified columns, one line per input. With more than one input
// a total row is appended.
type Printer struct {
	out     io.Writer
	mode    Mode
	entries []entry
}

func NewPrinter(options ...PrinterOption) (*Printer, error) {
	p := Printer{
		out: os.Stdout,
	}
	for _, o := range options {
		if err := o(&p); err != nil {
			return nil, err
		}
	}
	if p.mode == 0 {
		p.mode = Default
	}
	return &p, nil
}

// Print queues the result of one input. An empty name stands for
// standard input and leaves the line unnamed.
func (p *Printer) Print(name string, res Result) {
	p.entries = append(p.entries, entry{
		name: name,
		res:  res,
	})
}

// Flush writes every queued line and resets the printer.
func (p *Printer) Flush() error {
	all := p.entries
	p.entries = nil

	if len(all) > 1 {
		var total Result
		for _, e := range all {
			total = total.Merge(e.res)
		}
		all = append(all, entry{
			name: "total",
			res:  total,
		})
	}
	width := 1
	for _, e := range all {
		for _, c := range e.res.counters(p.mode) {
			if n := len(strconv.FormatInt(c, 10)); n > width {
				width = n
			}
		}
	}
	for _, e := range all {
		for i, c := range e.res.counters(p.mode) {
			if i > 0 {
				if _, err := io.WriteString(p.out, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(p.out, "%*d", width, c); err != nil {
				return err
			}
		}
		if e.name != "" {
			if _, err := fmt.Fprintf(p.out, " %s", e.name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// counters returns the selected counters in output order: lines, words,
// bytes, characters, longest line.
func (r Result) counters(mode Mode) []int64 {
	var cs []int64
	if mode&Lines != 0 {
		cs = append(cs, r.Lines)
	}
	if mode&Words != 0 {
		cs = append(cs, r.Words)
	}
	if mode&Bytes != 0 {
		cs = append(cs, r.Bytes)
	}
	if mode&Chars != 0 {
		cs = append(cs, r.Chars)
	}
	if mode&Length != 0 {
		cs = append(cs, r.Length)
	}
	return cs
}
