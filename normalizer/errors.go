package normalizer

import "fmt"

// SchemaError reports a payload that is structurally well-formed but is
// missing a field required by every known shape. The Detail names the missing
// field for diagnostics; user-facing surfaces show a generic message instead.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("route payload unreadable: %s", e.Detail)
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Detail: fmt.Sprintf(format, args...)}
}
