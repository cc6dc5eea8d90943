package swc_test

import (
	"strings"
	"testing"

	"github.com/midbel/swc"
)

func TestPrinter(t *testing.T) {
	data := []struct {
		Name    string
		Mode    swc.Mode
		Files   []string
		Results []swc.Result
		Want    []string
	}{
		{
			Name:    "all-counters",
			Mode:    swc.Default,
			Files:   []string{"poem.txt"},
			Results: []swc.Result{{Lines: 1, Words: 2, Bytes: 12, Chars: 12}},
			Want:    []string{" 1  2 12 12 poem.txt"},
		},
		{
			Name:    "stdin",
			Mode:    swc.Lines,
			Files:   []string{""},
			Results: []swc.Result{{Lines: 3}},
			Want:    []string{"3"},
		},
		{
			Name:    "fixed-order",
			Mode:    swc.Bytes | swc.Lines,
			Files:   []string{"x"},
			Results: []swc.Result{{Lines: 1, Bytes: 42}},
			Want:    []string{" 1 42 x"},
		},
		{
			Name: "total",
			Mode: swc.Lines | swc.Words,
			Files: []string{
				"a",
				"b",
			},
			Results: []swc.Result{
				{Lines: 1, Words: 2},
				{Lines: 10, Words: 20},
			},
			Want: []string{
				" 1  2 a",
				"10 20 b",
				"11 22 total",
			},
		},
		{
			Name:    "longest-line",
			Mode:    swc.Length,
			Files:   []string{"wide.txt"},
			Results: []swc.Result{{Length: 120}},
			Want:    []string{"120 wide.txt"},
		},
	}
	for _, d := range data {
		var out strings.Builder
		print, err := swc.NewPrinter(swc.WithOutput(&out), swc.WithPrintMode(d.Mode))
		if err != nil {
			t.Errorf("%s: fail to create printer: %s", d.Name, err)
			continue
		}
		for i := range d.Files {
			print.Print(d.Files[i], d.Results[i])
		}
		if err := print.Flush(); err != nil {
			t.Errorf("%s: unexpected error: %s", d.Name, err)
			continue
		}
		want := strings.Join(d.Want, "\n") + "\n"
		if got := out.String(); got != want {
			t.Errorf("%s: output mismatch! want %q, got %q", d.Name, want, got)
		}
	}
}

func TestPrinterFlushResets(t *testing.T) {
	var out strings.Builder
	print, err := swc.NewPrinter(swc.WithOutput(&out), swc.WithPrintMode(swc.Words))
	if err != nil {
		t.Fatalf("fail to create printer: %s", err)
	}
	print.Print("a", swc.Result{Words: 7})
	if err := print.Flush(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := print.Flush(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := out.String(); got != "7 a\n" {
		t.Errorf("output mismatch! want %q, got %q", "7 a\n", got)
	}
}

func TestPrinterOptions(t *testing.T) {
	if _, err := swc.NewPrinter(swc.WithOutput(nil)); err == nil {
		t.Errorf("nil writer accepted")
	}
	if _, err := swc.NewPrinter(swc.WithPrintMode(swc.Mode(64))); err == nil {
		t.Errorf("mode with unknown counter accepted")
	}
}
