package master

import "errors"

var (
	errNoColumns        = errors.New("master: no columns in pool")
	errDeadlineExceeded = errors.New("master: deadline already elapsed")
)
