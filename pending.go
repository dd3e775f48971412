package formvalidation

import (
	"github.com/dmitrymomot/formvalidation/pkg/async"
	"github.com/dmitrymomot/formvalidation/pkg/form"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// PendingValidationKey is the form property holding the most recently started
// validation of a binding.
const PendingValidationKey = "AsyncValidationTask"

// PendingValidation returns the most recently started validation on state.
//
// The slot is overwritten by every new validation, so the returned future may
// belong to a newer request than the one the caller triggered.
func PendingValidation(state *form.State) (*async.Future[validation.Result], bool) {
	if state == nil {
		return nil, false
	}
	return form.Value[*async.Future[validation.Result]](state.Properties(), PendingValidationKey)
}
