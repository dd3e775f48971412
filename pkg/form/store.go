package form

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
)

// MessageStore maps field identifiers to ordered message lists. Fields and
// messages keep insertion order.
type MessageStore struct {
	mu       sync.RWMutex
	fields   []fieldpath.FieldIdentifier
	messages map[fieldpath.FieldIdentifier][]string
}

// NewMessageStore creates a store whose messages are reported by state.
func NewMessageStore(state *State) *MessageStore {
	ms := &MessageStore{messages: make(map[fieldpath.FieldIdentifier][]string)}
	if state != nil {
		state.register(ms)
	}
	return ms
}

// Add appends messages to field. Empty calls are ignored.
func (ms *MessageStore) Add(field fieldpath.FieldIdentifier, messages ...string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.add(field, messages)
}

// Clear removes every message.
func (ms *MessageStore) Clear() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.clear()
}

// ClearField removes the messages of field.
func (ms *MessageStore) ClearField(field fieldpath.FieldIdentifier) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.clearField(field)
}

// Batch applies fn under the store's write lock, so readers observe either the
// state before or after all of fn's changes.
func (ms *MessageStore) Batch(fn func(b *Batch)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	fn(&Batch{store: ms})
}

// Messages returns all messages in field insertion order.
func (ms *MessageStore) Messages() []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []string
	for _, f := range ms.fields {
		out = append(out, ms.messages[f]...)
	}
	return out
}

// FieldMessages returns a copy of field's messages.
func (ms *MessageStore) FieldMessages(field fieldpath.FieldIdentifier) []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.messages[field])
}

// Fields lists the fields holding at least one message.
func (ms *MessageStore) Fields() []fieldpath.FieldIdentifier {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.fields)
}

// Len returns the total number of messages.
func (ms *MessageStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	n := 0
	for _, m := range ms.messages {
		n += len(m)
	}
	return n
}

func (ms *MessageStore) add(field fieldpath.FieldIdentifier, messages []string) {
	if len(messages) == 0 {
		return
	}
	existing, ok := ms.messages[field]
	if !ok {
		ms.fields = append(ms.fields, field)
	}
	ms.messages[field] = append(existing, messages...)
}

func (ms *MessageStore) clear() {
	ms.fields = nil
	clear(ms.messages)
}

func (ms *MessageStore) clearField(field fieldpath.FieldIdentifier) {
	if _, ok := ms.messages[field]; !ok {
		return
	}
	delete(ms.messages, field)
	ms.fields = slices.DeleteFunc(ms.fields, func(f fieldpath.FieldIdentifier) bool { return f == field })
}

// Batch mutates a MessageStore inside MessageStore.Batch.
type Batch struct {
	store *MessageStore
}

// Add appends messages to field.
func (b *Batch) Add(field fieldpath.FieldIdentifier, messages ...string) {
	b.store.add(field, messages)
}

// Clear removes every message.
func (b *Batch) Clear() {
	b.store.clear()
}

// ClearField removes the messages of field.
func (b *Batch) ClearField(field fieldpath.FieldIdentifier) {
	b.store.clearField(field)
}

// FieldMessages reads the pending view of field.
func (b *Batch) FieldMessages(field fieldpath.FieldIdentifier) []string {
	return slices.Clone(b.store.messages[field])
}
