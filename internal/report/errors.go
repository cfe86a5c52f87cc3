package report

import "fmt"

// EncodingError reports a catalog name or sequence that cannot be rendered
// as text.
type EncodingError struct {
	Index int
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("guide %d: %s is not valid UTF-8", e.Index, e.Field)
}
