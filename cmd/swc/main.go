package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/midbel/swc"
	"github.com/spf13/pflag"
)

// selection records the order options are given on the command line.
// wc prints bytes or characters depending on which of -c and -m comes
// last, which a plain bool flag can not observe.
type selection struct {
	mode swc.Mode
	seq  *[]swc.Mode
}

func (s *selection) String() string { return "" }

func (s *selection) Type() string { return "bool" }

func (s *selection) Set(string) error {
	*s.seq = append(*s.seq, s.mode)
	return nil
}

func main() {
	var (
		seq  []swc.Mode
		opts = pflag.NewFlagSet("swc", pflag.ContinueOnError)
	)
	pick := func(long, short, help string, mode swc.Mode) {
		opts.VarP(&selection{mode: mode, seq: &seq}, long, short, help)
		opts.Lookup(long).NoOptDefVal = "true"
	}
	pick("lines", "l", "count lines", swc.Lines)
	pick("words", "w", "count words", swc.Words)
	pick("bytes", "c", "count bytes", swc.Bytes)
	pick("chars", "m", "count characters", swc.Chars)
	pick("max-line-length", "L", "count characters of the longest line", swc.Length)
	opts.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: swc [option...] [file...]")
		fmt.Fprint(os.Stderr, opts.FlagUsages())
	}
	if err := opts.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(pickMode(seq), opts.Args()))
}

func run(mode swc.Mode, files []string) int {
	count, err := swc.New(swc.WithMode(mode))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	print, err := swc.NewPrinter(swc.WithPrintMode(mode))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	var status int
	if len(files) == 0 {
		res, err := count.Count(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		print.Print("", res)
	}
	for _, f := range files {
		res, err := count.CountFile(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = 1
			continue
		}
		print.Print(f, res)
	}
	if err := print.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		status = 1
	}
	return status
}

// pickMode folds the options in the order they were given. The last of
// -c and -m wins; with no option at all the default counters apply.
func pickMode(seq []swc.Mode) swc.Mode {
	var mode swc.Mode
	for _, m := range seq {
		switch m {
		case swc.Bytes:
			mode &^= swc.Chars
		case swc.Chars:
			mode &^= swc.Bytes
		}
		mode |= m
	}
	if mode == 0 {
		mode = swc.Default
	}
	return mode
}
