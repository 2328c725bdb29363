package serializers

import (
	"fmt"
	"strings"
)

// DeclarationError reports misuse of the declaration DSL or an input value
// that does not satisfy a declaration: unknown alias references, duplicate
// registrations, double combinator declarations, missing selectors, unknown
// selector results, removal of undeclared attributes, and missing source
// accessors. Definition and Attribute identify the declaration site when
// known.
type DeclarationError struct {
	Definition string
	Attribute  string
	Message    string
}

func (e *DeclarationError) Error() string {
	b := &strings.Builder{}
	b.WriteString("serializers: ")
	if e.Definition != "" {
		b.WriteString(e.Definition)
		if e.Attribute != "" {
			b.WriteString(".")
		} else {
			b.WriteString(": ")
		}
	}
	if e.Attribute != "" {
		b.WriteString(e.Attribute)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// DeclErrf builds a DeclarationError with no declaration context attached.
func DeclErrf(format string, args ...any) *DeclarationError {
	return &DeclarationError{Message: fmt.Sprintf(format, args...)}
}

// DeclErrAt builds a DeclarationError attributed to a definition/attribute.
func DeclErrAt(definition, attribute, format string, args ...any) *DeclarationError {
	return &DeclarationError{Definition: definition, Attribute: attribute, Message: fmt.Sprintf(format, args...)}
}

// MissingSourceError wraps a failure raised by a source accessor for a reason
// unrelated to plain absence (for example a method that requires arguments,
// or an accessor that returned an error). The original failure is preserved
// via Unwrap and never swallowed.
type MissingSourceError struct {
	Definition string
	Attribute  string
	Source     string
	Cause      error
}

func (e *MissingSourceError) Error() string {
	b := &strings.Builder{}
	b.WriteString("serializers: ")
	if e.Definition != "" {
		b.WriteString(e.Definition)
		b.WriteString(".")
	}
	if e.Attribute != "" {
		b.WriteString(e.Attribute)
		b.WriteString(": ")
	}
	fmt.Fprintf(b, "source %q failed", e.Source)
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *MissingSourceError) Unwrap() error { return e.Cause }
