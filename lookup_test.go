package formvalidation_test

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation"
	"github.com/dmitrymomot/formvalidation/pkg/discovery"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// named reports one failure on FirstName carrying its own name, so tests can
// tell which lookup step produced the validator.
type named string

func (n named) Validate(context.Context, *validation.Invocation) (validation.Result, error) {
	return failures(validation.Failure{Path: "FirstName", Message: string(n)}), nil
}

type countingSource struct {
	name  string
	regs  []discovery.Registration
	mu    sync.Mutex
	scans int
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) Scan() ([]discovery.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scans++
	return s.regs, nil
}

func (s *countingSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scans
}

func catalogWith(v validation.Validator) *discovery.Catalog {
	c := emptyCatalog()
	c.Register(discovery.NewSource("test", discovery.For[person](func() validation.Validator { return v })))
	return c
}

func registryWith(v validation.Validator) *formvalidation.Registry {
	r := formvalidation.NewRegistry()
	formvalidation.Register[person](r, v)
	return r
}

func factoryOf(v validation.Validator) formvalidation.ValidatorFactory {
	return func(formvalidation.FactoryContext) validation.Validator { return v }
}

func TestLookup_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []formvalidation.Option
		want string
	}{
		{
			name: "explicit validator wins",
			opts: []formvalidation.Option{
				formvalidation.WithValidator(named("explicit")),
				formvalidation.WithValidatorFactory(factoryOf(named("factory"))),
				formvalidation.WithServices(registryWith(named("services"))),
				formvalidation.WithCatalog(catalogWith(named("discovery"))),
			},
			want: "explicit",
		},
		{
			name: "factory before services",
			opts: []formvalidation.Option{
				formvalidation.WithValidatorFactory(factoryOf(named("factory"))),
				formvalidation.WithServices(registryWith(named("services"))),
				formvalidation.WithCatalog(catalogWith(named("discovery"))),
			},
			want: "factory",
		},
		{
			name: "nil factory result falls through",
			opts: []formvalidation.Option{
				formvalidation.WithValidatorFactory(factoryOf(nil)),
				formvalidation.WithServices(registryWith(named("services"))),
			},
			want: "services",
		},
		{
			name: "services before discovery",
			opts: []formvalidation.Option{
				formvalidation.WithServices(registryWith(named("services"))),
				formvalidation.WithCatalog(catalogWith(named("discovery"))),
			},
			want: "services",
		},
		{
			name: "discovery last",
			opts: []formvalidation.Option{
				formvalidation.WithServices(formvalidation.NewRegistry()),
				formvalidation.WithCatalog(catalogWith(named("discovery"))),
			},
			want: "discovery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state, _ := attach(t, validPerson(), tt.opts...)
			_, err := state.Validate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, state.Messages())
		})
	}
}

func TestLookup_Discovery(t *testing.T) {
	t.Parallel()

	t.Run("sources are scanned once across bindings", func(t *testing.T) {
		t.Parallel()
		src := &countingSource{
			name: "people",
			regs: []discovery.Registration{discovery.For[person](func() validation.Validator { return personRules() })},
		}
		catalog := emptyCatalog()
		catalog.Register(src)

		for range 3 {
			p := validPerson()
			p.FirstName = ""
			state, _ := attach(t, p, formvalidation.WithCatalog(catalog))
			_, err := state.Validate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{firstNameRequired}, state.Messages())
		}
		assert.Equal(t, 1, src.count())
	})

	t.Run("disabled discovery skips the catalog", func(t *testing.T) {
		t.Parallel()
		src := &countingSource{
			name: "people",
			regs: []discovery.Registration{discovery.For[person](func() validation.Validator { return named("discovery") })},
		}
		catalog := emptyCatalog()
		catalog.Register(src)

		state, _ := attach(t, validPerson(),
			formvalidation.WithCatalog(catalog),
			formvalidation.WithDisableDiscovery())
		ok, err := state.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, src.count())
	})

	t.Run("validator is resolved once per binding", func(t *testing.T) {
		t.Parallel()
		var built int
		factory := func(fc formvalidation.FactoryContext) validation.Validator {
			built++
			assert.Equal(t, reflect.TypeFor[*person](), fc.ModelType)
			return personRules()
		}
		state, _ := attach(t, validPerson(), formvalidation.WithValidatorFactory(factory))

		for range 3 {
			_, err := state.Validate(context.Background())
			require.NoError(t, err)
		}
		require.NoError(t, state.NotifyFieldChanged(context.Background(), state.Field("FirstName")))
		assert.Equal(t, 1, built)
	})
}

func TestLookup_Missing(t *testing.T) {
	t.Parallel()

	t.Run("skipped by default", func(t *testing.T) {
		t.Parallel()
		state, _ := attach(t, validPerson())
		notified := countNotifications(state)

		ok, err := state.Validate(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, state.NotifyFieldChanged(context.Background(), state.Field("FirstName")))
		assert.Zero(t, notified.Load())
	})

	t.Run("strict lookup fails", func(t *testing.T) {
		t.Parallel()
		state, _ := attach(t, validPerson(), formvalidation.WithStrictLookup())

		_, err := state.Validate(context.Background())
		assert.ErrorIs(t, err, formvalidation.ErrValidatorNotFound)
		err = state.NotifyFieldChanged(context.Background(), state.Field("FirstName"))
		assert.ErrorIs(t, err, formvalidation.ErrValidatorNotFound)
	})

	t.Run("model type override", func(t *testing.T) {
		t.Parallel()
		type personDraft person
		reg := registryWith(named("services"))

		draft := personDraft(*validPerson())
		state, _ := attach(t, &draft,
			formvalidation.WithServices(reg),
			formvalidation.WithModelType(reflect.TypeFor[person]()))
		_, err := state.Validate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"services"}, state.Messages())
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := formvalidation.NewRegistry()
	_, ok := r.Validator(reflect.TypeFor[person]())
	assert.False(t, ok)

	formvalidation.Register[person](r, named("a"))
	v, ok := r.Validator(reflect.TypeFor[*person]())
	require.True(t, ok)
	assert.Equal(t, named("a"), v)

	formvalidation.Register[person](r, named("b"))
	v, ok = r.Validator(reflect.TypeFor[person]())
	require.True(t, ok)
	assert.Equal(t, named("b"), v)

	formvalidation.Register[address](r, nil)
	_, ok = r.Validator(reflect.TypeFor[address]())
	assert.False(t, ok)

}
