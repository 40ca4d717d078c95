package diag

import (
	"fmt"
	"strings"
)

// SourceRenderer formats a single Diagnostic together with the offending
// source line and a caret, matching the teacher's CompilerError.Format.
// Unlike FormatForDisplay/FormatGCC, it is meant for a human-facing
// terminal report rather than a grep-able stream of one-liners.
type SourceRenderer struct {
	Source string // full text of the primary source file
	Color  bool   // use ANSI color for the caret and message
}

// Render produces a multi-line report: a header, the source line, a caret
// pointing at the column, and the message.
func (r SourceRenderer) Render(d Diagnostic) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: %s:\n", d.File, d.Position.Line, d.Position.Column, d.Severity)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: %s:\n", d.Position.Line, d.Position.Column, d.Severity)
	}

	if line := r.sourceLine(d.Position.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Position.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Position.Column-1))
		if r.Color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if r.Color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if r.Color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if r.Color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (r SourceRenderer) sourceLine(lineNum int) string {
	if r.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(r.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// RenderAll renders every diagnostic in ds, separated by blank lines.
func (r SourceRenderer) RenderAll(ds []Diagnostic) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = r.Render(d)
	}
	return strings.Join(parts, "\n\n")
}
