package form_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/form"
)

func TestMessageStore(t *testing.T) {
	t.Parallel()

	p := &person{Address: &address{}}
	state, err := form.NewState(p)
	require.NoError(t, err)
	store := form.NewMessageStore(state)

	name := fieldpath.Field(p, "Name")
	line1 := fieldpath.Field(p.Address, "Line1")

	store.Add(line1, "line 1 required")
	store.Add(name, "name required", "name too short")
	store.Add(line1, "line 1 too long")
	store.Add(name)

	assert.Equal(t, []fieldpath.FieldIdentifier{line1, name}, store.Fields())
	assert.Equal(t, []string{"line 1 required", "line 1 too long", "name required", "name too short"}, store.Messages())
	assert.Equal(t, []string{"name required", "name too short"}, store.FieldMessages(name))
	assert.Equal(t, 4, store.Len())
	assert.Equal(t, store.Messages(), state.Messages())

	store.ClearField(line1)
	assert.Empty(t, store.FieldMessages(line1))
	assert.Equal(t, []fieldpath.FieldIdentifier{name}, store.Fields())
	assert.Equal(t, 2, store.Len())

	store.ClearField(line1)
	store.Clear()
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Fields())
	assert.Empty(t, state.Messages())
}

func TestMessageStore_FieldMessagesIsACopy(t *testing.T) {
	t.Parallel()

	store := form.NewMessageStore(nil)
	f := fieldpath.Field(&person{}, "Name")
	store.Add(f, "a")

	got := store.FieldMessages(f)
	got[0] = "changed"
	assert.Equal(t, []string{"a"}, store.FieldMessages(f))
}

func TestMessageStore_MultipleStores(t *testing.T) {
	t.Parallel()

	p := &person{}
	state, err := form.NewState(p)
	require.NoError(t, err)
	first := form.NewMessageStore(state)
	second := form.NewMessageStore(state)

	first.Add(state.Field("Name"), "from first")
	second.Add(state.Field("Name"), "from second")

	assert.Equal(t, []string{"from first", "from second"}, state.FieldMessages(state.Field("Name")))
	first.Clear()
	assert.Equal(t, []string{"from second"}, state.Messages())
}

func TestMessageStore_Batch(t *testing.T) {
	t.Parallel()

	p := &person{}
	store := form.NewMessageStore(nil)
	name := fieldpath.Field(p, "Name")
	addr := fieldpath.Field(p, "Address")
	store.Add(name, "old")
	store.Add(addr, "keep")

	store.Batch(func(b *form.Batch) {
		b.ClearField(name)
		assert.Empty(t, b.FieldMessages(name))
		b.Add(name, "new")
	})
	assert.Equal(t, []string{"new"}, store.FieldMessages(name))
	assert.Equal(t, []string{"keep"}, store.FieldMessages(addr))

	store.Batch(func(b *form.Batch) {
		b.Clear()
		b.Add(addr, "only")
	})
	assert.Equal(t, []string{"only"}, store.Messages())
}

func TestMessageStore_Concurrent(t *testing.T) {
	t.Parallel()

	p := &person{}
	store := form.NewMessageStore(nil)
	f := fieldpath.Field(p, "Name")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Batch(func(b *form.Batch) {
				b.ClearField(f)
				b.Add(f, "one", "two")
			})
			_ = store.Messages()
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"one", "two"}, store.FieldMessages(f))
}
