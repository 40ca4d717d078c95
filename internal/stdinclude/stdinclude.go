// Package stdinclude provides the built-in source behind `#include <std>`
// and the SystemIncludeProvider the standard driver wires into the lexer
// for it.
//
// The runtime-provided function catalog is already preloaded into the
// analyzer's root scope unconditionally by semantic.NewAnalyzer, so
// `#include <std>` has nothing left to declare: ris's grammar has no
// prototype-only form of FuncDecl, and re-declaring a runtime function with
// a body would either collide with the seeded symbol (InsertLocal fails,
// "already declared") or require the analyzer to special-case bodies that
// never run. The bundle is therefore comment-only documentation of the
// catalog a program gets once it includes it — lexically inert, tokenizing
// to nothing but whitespace and line comments, so `#include <std>` is valid
// and harmless both before and after any call to a runtime function.
package stdinclude

import "strings"

// Name is the system-include name the standard driver recognizes.
const Name = "std"

// source documents the runtime catalog. Every line is a comment; the lexer
// drops it without emitting a token.
const source = `// std: declarations available after #include <std>.
//
// print(value, ...) -> void       variadic, any primitive or list argument
// println(value, ...) -> void     variadic, zero or more arguments
//
// ris_malloc(int) -> string
// ris_free(string) -> void
// ris_string_concat(string, string) -> string
// ris_string_length(string) -> int
// ris_exit(int) -> void
//
// ris_print_int(int) -> void           ris_println_int(int) -> void
// ris_print_float(float) -> void       ris_println_float(float) -> void
// ris_print_bool(bool) -> void         ris_println_bool(bool) -> void
// ris_print_char(char) -> void         ris_println_char(char) -> void
// ris_print_string(string) -> void     ris_println_string(string) -> void
// ris_println() -> void
//
// All of the above are preloaded into scope automatically; this include
// exists for source compatibility with programs that spell it out.
`

// Provider resolves the `<std>` system include; it implements
// lexer.SystemIncludeProvider and is the value the standard driver passes
// via lexer.WithSystemIncludeProvider.
func Provider(name string) (string, bool) {
	if name != Name {
		return "", false
	}
	return source, true
}

// Source returns the bundle text directly, for callers that want it
// without going through the provider's name lookup.
func Source() string { return source }

// Names lists the system-include names this provider recognizes.
func Names() []string { return []string{Name} }

func init() {
	// Guard against accidental edits that break the "comment-only" promise:
	// every non-blank line of the bundle must start a line comment.
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "//") {
			panic("stdinclude: source must be comment-only, found: " + line)
		}
	}
}
