package colgen

import "errors"

var errDeadlineDuringLoop = errors.New("colgen: shared deadline reached while column generation had not converged")
