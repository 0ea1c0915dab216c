package availability

import "fmt"

// ValidationError signals malformed or contradictory input. It is raised
// before any storage is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ForbiddenError signals the requester may not see the target resource.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string { return e.Message }

// NotFoundError signals a missing slot or group.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }
