package scenario

import "fmt"

// FieldTypeError reports a coordinate or time step that is not a YAML float.
type FieldTypeError struct {
	Field  string
	Line   int
	Column int
	Value  string
	Tag    string
}

func (e *FieldTypeError) Error() string {
	field := e.Field
	if field == "" {
		field = "value"
	}
	if e.Tag == "missing" {
		if e.Line == 0 {
			return fmt.Sprintf("%s: missing, want a float", field)
		}
		return fmt.Sprintf("line %d: %s: missing, want a float", e.Line, field)
	}
	return fmt.Sprintf("line %d: %s: %q is %s, want a float", e.Line, field, e.Value, e.Tag)
}
