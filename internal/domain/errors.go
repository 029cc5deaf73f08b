package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrPrecondition     = errors.New("precondition failed")
	ErrReferential      = errors.New("referenced user does not exist")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// PreconditionError reports a guarded update that matched no row while
// the escrow itself exists: the status (or the acting party) did not
// satisfy the transition's precondition. Current carries the observed
// status so callers can render an actionable message.
type PreconditionError struct {
	Action   string
	Current  string
	Required []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s: escrow is %q, must be %q",
		e.Action, e.Current, strings.Join(e.Required, " or "))
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
