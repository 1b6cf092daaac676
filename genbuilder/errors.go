package genbuilder

import "errors"

var errInvalidGridDims = errors.New("genbuilder: rows and cols must both be positive")
