package chain

import "fmt"

// RequestError is returned when a chain endpoint fails or answers with
// something other than 200.
type RequestError struct {
	Operation string
	Status    int
	Message   string
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}
