package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Kind", "Episode"}, [][]string{{"video", "01"}, {"subtitle"}}, []columnAlignment{alignLeft, alignRight})
	for _, want := range []string{"Kind", "Episode", "video", "subtitle", "01", "╭"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestWriteRowsPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	writeRows(&buf, []string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}}, nil)
	if got := buf.String(); got != "1\t2\n3\t4\n" {
		t.Fatalf("rows = %q", got)
	}
}
