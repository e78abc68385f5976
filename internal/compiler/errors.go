package compiler

import (
	"fmt"

	"github.com/specialistvlad/casegrid/internal/casemodel"
)

// ModelError reports model data the compiler needs but cannot use, such as
// a missing id or an unresolved definition reference.
type ModelError struct {
	ElementID string
	Kind      casemodel.Kind
	Reason    string
}

func (e *ModelError) Error() string {
	if e.ElementID == "" {
		return fmt.Sprintf("invalid %s element: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s element %q: %s", e.Kind, e.ElementID, e.Reason)
}

func modelError(el *casemodel.Element, format string, args ...any) *ModelError {
	return &ModelError{ElementID: el.ID, Kind: el.Kind, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedElementKindError is returned for element kinds without a handler.
type UnsupportedElementKindError struct {
	ElementID string
	Kind      casemodel.Kind
}

func (e *UnsupportedElementKindError) Error() string {
	return fmt.Sprintf("no handler for %s element %q", e.Kind, e.ElementID)
}
