package branch

import "errors"

var errNoFractionalCandidate = errors.New("branch: no fractional branching candidate found")
