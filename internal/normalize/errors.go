package normalize

import "fmt"

// DocumentError marks a failure to turn an input document into grids.
// Role names which input failed ("full list", "monitoring report").
type DocumentError struct {
	Role string
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("cannot read %s %q: %v", e.Role, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(role, path string, err error) *DocumentError {
	return &DocumentError{
		Role: role,
		Path: path,
		Err:  err,
	}
}
