package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/pod-format/encode"
)

var (
	deleteColor = color.New(color.FgRed).SprintFunc()
	insertColor = color.New(color.FgGreen).SprintFunc()
)

// Render writes lines prefixed by their operation, colored if colored is
// set.
func Render(w io.Writer, lines []Line, colored bool) error {
	for i := range lines {
		ln := &lines[i]
		s := ln.Op.String() + " " + ln.Text
		if colored {
			s = colorize(ln.Op, s)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// RenderChanges writes one entry per change: its operation, path and the
// canonical text of the node concerned.
func RenderChanges(w io.Writer, changes []Change, colored bool) error {
	for i := range changes {
		c := &changes[i]
		y := c.To
		if c.Op == Delete {
			y = c.From
		}
		path := c.Path
		if path == "" {
			path = "."
		}
		text := strings.ReplaceAll(encode.MustString(y), "\n", "\n    ")
		s := fmt.Sprintf("%s %s: %s", c.Op, path, text)
		if colored {
			s = colorize(c.Op, s)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func colorize(op Op, s string) string {
	switch op {
	case Delete:
		return deleteColor(s)
	case Insert:
		return insertColor(s)
	}
	return s
}
