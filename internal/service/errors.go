package service

// NotFoundError reports that the requested record does not exist. The
// message is user-facing and already names the entity and lookup key.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports that a create would duplicate a unique field.
// Existing carries the record already holding the value so the response
// can echo it back.
type ConflictError struct {
	Message  string
	Existing any
}

func (e *ConflictError) Error() string { return e.Message }

// ReferenceError reports that a write points at a record that does not
// exist, e.g. a user created with a dangling role id.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string { return e.Message }

// InUseError reports that a delete is forbidden while other records still
// reference the target.
type InUseError struct {
	Message string
}

func (e *InUseError) Error() string { return e.Message }
