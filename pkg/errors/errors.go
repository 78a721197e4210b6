package errors

import "errors"

// ErrForbidden marks an operation on a resource the caller does not own.
// Services return it; handlers map it to 403.
var ErrForbidden = errors.New("operation not permitted on this resource")
