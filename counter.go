package swc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrDecode = errors.New("invalid byte sequence")

type Mode uint8

const (
	Lines Mode = 1 << iota
	Words
	Bytes
	Chars
	Length
)

const Default = Lines | Words | Bytes | Chars

// Result holds the counters computed by a single pass over an input.
// Counters not selected by the mode of the pass are left to zero.
type Result struct {
	Lines  int64
	Words  int64
	Bytes  int64
	Chars  int64
	Length int64
}

// Merge sums the counters of two results. Length is the longest line
// seen by either, not a sum.
func (r Result) Merge(other Result) Result {
	r.Lines += other.Lines
	r.Words += other.Words
	r.Bytes += other.Bytes
	r.Chars += other.Chars
	if other.Length > r.Length {
		r.Length = other.Length
	}
	return r
}

func (r Result) keep(mode Mode) Result {
	if mode&Lines == 0 {
		r.Lines = 0
	}
	if mode&Words == 0 {
		r.Words = 0
	}
	if mode&Bytes == 0 {
		r.Bytes = 0
	}
	if mode&Chars == 0 {
		r.Chars = 0
	}
	if mode&Length == 0 {
		r.Length = 0
	}
	return r
}

type Counter struct {
	mode Mode
}

func New(options ...Option) (*Counter, error) {
	var c Counter
	for _, o := range options {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	if c.mode == 0 {
		c.mode = Default
	}
	return &c, nil
}

// Count reads r to its end and returns the counters selected by the
// counter's mode. The input is consumed in a single forward pass.
//
// A sequence that is not valid UTF-8 fails the pass with ErrDecode when
// character counting is selected. Otherwise each invalid byte counts as
// one ordinary non blank character.
func (c *Counter) Count(r io.Reader) (Result, error) {
	if c.mode == Bytes {
		if res, ok := statBytes(r); ok {
			return res, nil
		}
	}
	var (
		rs   = bufio.NewReader(r)
		res  Result
		word bool
		line int64
	)
	for {
		char, size, err := rs.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read: %w", err)
		}
		if char == utf8.RuneError && size == 1 && c.mode&Chars != 0 {
			return Result{}, fmt.Errorf("offset %d: %w", res.Bytes, ErrDecode)
		}
		res.Bytes += int64(size)
		res.Chars++
		if char == '\n' {
			res.Lines++
			if line > res.Length {
				res.Length = line
			}
			line = 0
		} else {
			line++
		}
		if isBlank(char) {
			word = false
		} else if !word {
			word = true
			res.Words++
		}
	}
	if line > res.Length {
		res.Length = line
	}
	return res.keep(c.mode), nil
}

// CountFile opens the given file, counts it and closes it. Errors
// raised while reading carry the file name.
func (c *Counter) CountFile(file string) (Result, error) {
	r, err := os.Open(file)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	res, err := c.Count(r)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", file, err)
	}
	return res, nil
}

// statBytes answers a bytes-only pass from the file size when the input
// unwraps to a regular file, without consuming the stream.
func statBytes(r io.Reader) (Result, bool) {
	f, ok := unwrapFile(r)
	if !ok {
		return Result{}, ok
	}
	s, err := f.Stat()
	if err != nil || !s.Mode().IsRegular() {
		return Result{}, false
	}
	return Result{Bytes: s.Size()}, true
}

// isBlank reports ASCII whitespace. Unicode spaces such as U+00A0 do
// not split words.
func isBlank(char rune) bool {
	switch char {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
