package common

import "errors"

// ErrorNotFound signals that the requested resource does not exist on the
// server. Callers match it with errors.Is.
var ErrorNotFound = errors.New("not found")
