package guides

import "fmt"

// MalformedRecordError reports a catalog row that does not decode into the
// four expected fields, or whose probe field holds an invalid symbol.
type MalformedRecordError struct {
	Path   string
	Line   int
	Fields int    // fields found, when known
	Field  string // offending column, when known
	Err    error
}

func (e *MalformedRecordError) Error() string {
	where := e.Path
	if where == "" {
		where = "catalog"
	}
	if e.Fields > 0 && e.Fields != NumFields {
		return fmt.Sprintf("%s:%d: malformed record: want %d fields, got %d", where, e.Line, NumFields, e.Fields)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: malformed record: %s: %v", where, e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s:%d: malformed record: %v", where, e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
