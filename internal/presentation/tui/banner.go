package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the statespace banner to w, colored when the terminal supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"      _        _                                 ", "#818cf8"},
		{"  ___| |_ __ _| |_ ___  ___ _ __   __ _  ___ ___ ", "#a78bfa"},
		{" / __| __/ _` | __/ _ \\/ __| '_ \\ / _` |/ __/ _ \\", "#c084fc"},
		{" \\__ \\ || (_| | ||  __/\\__ \\ |_) | (_| | (_|  __/", "#e879f9"},
		{" |___/\\__\\__,_|\\__\\___||___/ .__/ \\__,_|\\___\\___|", "#f472b6"},
		{"                            |_|                  ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
