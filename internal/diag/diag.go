// Package diag implements the shared diagnostic sink used by the lexer,
// parser, and semantic analyzer. It is the only resource shared by
// reference between compilation phases.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RaphaeleL/ris-sub000/internal/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Component names the phase that produced a Diagnostic.
type Component string

const (
	Lexer    Component = "lexer"
	Parser   Component = "parser"
	Semantic Component = "semantic"
)

// Diagnostic is one message emitted by a compiler phase.
type Diagnostic struct {
	Severity  Severity
	Component Component
	Position  token.Position
	Message   string
	File      string // primary file name the Sink was created with, "" if none
}

// Sink is an append-only diagnostic accumulator, owned by the driver for
// the compilation of one primary source file. It performs no
// deduplication and no severity escalation.
type Sink struct {
	diagnostics []Diagnostic
	file        string // current primary file, attached to every report
}

// NewSink creates an empty Sink. file names the primary source and is
// attached to every diagnostic, including those raised inside an include
// (the lexer names the included file in such a message's text instead).
func NewSink(file string) *Sink {
	return &Sink{file: file}
}

// Report appends one diagnostic record, preserving insertion order.
func (s *Sink) Report(severity Severity, component Component, pos token.Position, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity:  severity,
		Component: component,
		Position:  pos,
		Message:   message,
		File:      s.file,
	})
}

// All returns every diagnostic in insertion order.
func (s *Sink) All() []Diagnostic { return s.diagnostics }

// Errors returns only the Error-severity diagnostics, in insertion order.
func (s *Sink) Errors() []Diagnostic { return s.filter(Error) }

// Warnings returns only the Warning-severity diagnostics, in insertion order.
func (s *Sink) Warnings() []Diagnostic { return s.filter(Warning) }

func (s *Sink) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range s.diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors is true iff at least one Error diagnostic has been reported.
// Callers use this to decide whether to stop the pipeline at a phase
// boundary rather than build on top of a broken result.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Clear removes all diagnostics, for reuse of a Sink across compilations.
func (s *Sink) Clear() { s.diagnostics = nil }

// FormatForDisplay renders every diagnostic as "[component] message at
// line:column", one per line. When stableSort is true the diagnostics are
// sorted by (file, line, column) first; otherwise insertion order is
// preserved, so a caller that wants output matching the order diagnostics
// were produced in can get it.
func (s *Sink) FormatForDisplay(stableSort bool) string {
	ds := s.orderedDiagnostics(stableSort)
	var sb strings.Builder
	for _, d := range ds {
		fmt.Fprintf(&sb, "[%s] %s at %d:%d\n", d.Component, d.Message, d.Position.Line, d.Position.Column)
	}
	return sb.String()
}

// FormatGCC renders every diagnostic in the alternate "file:line:column:
// severity: message" form, the convention editors and other tools that
// parse gcc/clang-style error output expect.
func (s *Sink) FormatGCC(stableSort bool) string {
	ds := s.orderedDiagnostics(stableSort)
	var sb strings.Builder
	for _, d := range ds {
		file := d.File
		if file == "" {
			file = "<source>"
		}
		fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", file, d.Position.Line, d.Position.Column, d.Severity, d.Message)
	}
	return sb.String()
}

func (s *Sink) orderedDiagnostics(stableSort bool) []Diagnostic {
	if !stableSort {
		return s.diagnostics
	}
	ds := make([]Diagnostic, len(s.diagnostics))
	copy(ds, s.diagnostics)
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].File != ds[j].File {
			return ds[i].File < ds[j].File
		}
		if ds[i].Position.Line != ds[j].Position.Line {
			return ds[i].Position.Line < ds[j].Position.Line
		}
		return ds[i].Position.Column < ds[j].Position.Column
	})
	return ds
}
