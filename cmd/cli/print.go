package main

import (
	"fmt"
	"io"
	"strings"
)

// lineSink prints outcome lines as soon as the runner produces them.
type lineSink struct {
	w io.Writer
}

func (s lineSink) Append(line string) {
	_, _ = fmt.Fprintln(s.w, line)
}

// printTable prints rows as a bordered table sized to its widest cells.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = maxInt(widths[i], len(cell))
		}
	}

	parts := make([]string, len(widths))
	for i, wd := range widths {
		parts[i] = strings.Repeat("-", wd)
	}
	sep := "+-" + strings.Join(parts, "-+-") + "-+\n"

	printRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = pad(c, widths[i])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	}

	_, _ = fmt.Fprint(w, sep)
	printRow(header)
	_, _ = fmt.Fprint(w, sep)
	for _, row := range rows {
		printRow(row)
	}
	_, _ = fmt.Fprint(w, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
