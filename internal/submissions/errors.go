package submissions

import "fmt"

// NotFoundError reports a missing submission record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "submissions: not found"
	}
	return fmt.Sprintf("submissions: %s %q not found", e.Resource, e.Key)
}
