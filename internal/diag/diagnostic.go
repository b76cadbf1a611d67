package diag

import (
	"fmt"
)

// Diagnostic describes one problem found in the source text.
type Diagnostic struct {
	Position int
	Width    int
	Code     Code
	Severity Severity
	Args     []string
}

// New creates a diagnostic with the default severity of its code.
func New(position, width int, code Code, args ...string) Diagnostic {
	if len(args) == 0 {
		args = nil
	}
	return Diagnostic{
		Position: position,
		Width:    width,
		Code:     code,
		Severity: code.DefaultSeverity(),
		Args:     args,
	}
}

// End returns the exclusive end offset of the diagnostic.
func (d Diagnostic) End() int {
	return d.Position + d.Width
}

// Message renders the code's template with the diagnostic arguments.
func (d Diagnostic) Message() string {
	return d.Code.Format(d.Args...)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s@%d+%d: %s", d.Severity, d.Code.ID(), d.Position, d.Width, d.Message())
}
