// Package form provides the form-state object that validation bindings attach
// to.
//
// A State wraps one model and raises three events: validation requested (a full
// form validation), field changed (one edited value) and validation state
// changed (messages were updated and the UI should re-render). Validation
// output lives in MessageStores registered with the State; State.Messages
// aggregates them.
//
//	state, _ := form.NewState(&person)
//	store := form.NewMessageStore(state)
//	store.Add(fieldpath.Field(person.Address, "Line1"), "You must enter Line 1")
//	state.NotifyValidationStateChanged()
//
// Every type in this package is safe for concurrent use.
package form
