package swc

import (
	"fmt"
	"io"
)

type Option func(*Counter) error

func WithMode(mode Mode) Option {
	return func(c *Counter) error {
		if mode&^(Lines|Words|Bytes|Chars|Length) != 0 {
			return fmt.Errorf("unknown counter in mode %b", mode)
		}
		c.mode |= mode
		return nil
	}
}

func WithLines() Option {
	return WithMode(Lines)
}

func WithWords() Option {
	return WithMode(Words)
}

func WithBytes() Option {
	return WithMode(Bytes)
}

func WithChars() Option {
	return WithMode(Chars)
}

func WithLength() Option {
	return WithMode(Length)
}

type PrinterOption func(*Printer) error

func WithOutput(w io.Writer) PrinterOption {
	return func(p *Printer) error {
		if w == nil {
			return fmt.Errorf("nil writer")
		}
		p.out = w
		return nil
	}
}

func WithPrintMode(mode Mode) PrinterOption {
	return func(p *Printer) error {
		if mode&^(Lines|Words|Bytes|Chars|Length) != 0 {
			return fmt.Errorf("unknown counter in mode %b", mode)
		}
		p.mode |= mode
		return nil
	}
}
