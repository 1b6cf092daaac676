package instance

import "errors"

var (
	errMissingHeader   = errors.New("instance: missing header line")
	errMalformedHeader = errors.New("instance: malformed header line")
	errUnexpectedEOF   = errors.New("instance: unexpected end of input")
)
