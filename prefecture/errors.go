package prefecture

import "fmt"

// InvalidCodeError reports a FindByCode query outside the JIS X 0401 code
// set. It carries the offending code for caller diagnostics.
type InvalidCodeError struct {
	Code int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("prefecture: invalid prefecture code: %d", e.Code)
}

// InvalidNameError reports a name lookup that matched no prefecture in the
// queried representation. It carries the offending query string.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("prefecture: invalid prefecture name: %q", e.Name)
}
