package metadata

import "fmt"

// MetadataError reports DDL that parsed but violates a metadata rule, such
// as a second primary key or a body on a foreign procedure.
type MetadataError struct {
	Object  string // name of the table, procedure or function involved
	Message string
}

func (e *MetadataError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("%s: %s", e.Object, e.Message)
	}
	return e.Message
}

func metadataErrorf(object, format string, args ...any) *MetadataError {
	return &MetadataError{Object: object, Message: fmt.Sprintf(format, args...)}
}

// DuplicateRecordError reports a record whose key is already taken in the
// same metadata unit.
type DuplicateRecordError struct {
	Kind string // "table", "function", "schema", ...
	Name string
	Key  string // the colliding key when it differs from Name, e.g. a UUID
}

func (e *DuplicateRecordError) Error() string {
	if e.Key != "" && e.Key != e.Name {
		return fmt.Sprintf("duplicate %s %s (%s)", e.Kind, e.Name, e.Key)
	}
	return fmt.Sprintf("duplicate %s %s", e.Kind, e.Name)
}
