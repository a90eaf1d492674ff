package services

import "errors"

// ErrForbidden is returned whenever the acting user lacks the role or
// ownership an operation requires. Every service call receives the actor
// explicitly; nothing is read from ambient state.
var ErrForbidden = errors.New("accès refusé : vous n'avez pas les autorisations nécessaires pour effectuer cette action")
