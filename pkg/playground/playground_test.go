package playground_test

import (
	"context"
	"strings"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation/pkg/playground"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

type testModel struct {
	RequiredString string `validate:"required"`
	IntFrom1To100  int    `validate:"min=1,max=100"`
}

type address struct {
	Line1 string `validate:"required"`
	Town  string `validate:"required" severity:"warning"`
}

type order struct {
	Total float64 `validate:"gt=0"`
}

type person struct {
	Name    string `validate:"required,max=50" subset:"Names"`
	Age     int    `validate:"gte=0,lt=150"`
	Email   string `validate:"required,email"`
	Address *address
	Orders  []order `validate:"dive"`
}

type account struct {
	Username string
	Nickname string
}

func validPerson() *person {
	return &person{Name: "John", Age: 30, Email: "john@example.com"}
}

func paths(res validation.Result) []string {
	out := make([]string, 0, len(res.Failures))
	for _, f := range res.Failures {
		out = append(out, f.Path)
	}
	return out
}

func TestValidator_RangeAndRequired(t *testing.T) {
	t.Parallel()

	v := playground.New[testModel]()
	m := &testModel{RequiredString: "", IntFrom1To100: 101}

	res, err := v.Validate(context.Background(), validation.NewInvocation(m))
	require.NoError(t, err)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, []string{"RequiredString", "IntFrom1To100"}, paths(res))
	assert.Equal(t, "required", res.Failures[0].Rule)
	assert.Equal(t, "max", res.Failures[1].Rule)
	assert.Equal(t, 101, res.Failures[1].Value)
	assert.Equal(t,
		"'RequiredString': value '' does not meet the requirements for the 'required' validation",
		res.Failures[0].Message)

	m.RequiredString = "filled"
	m.IntFrom1To100 = 100
	res, err = v.Validate(context.Background(), validation.NewInvocation(m))
	require.NoError(t, err)
	assert.True(t, res.IsValid())
}

func TestValidator_NestedPaths(t *testing.T) {
	t.Parallel()

	v := playground.New[person]()
	p := validPerson()
	p.Name = ""
	p.Address = &address{}
	p.Orders = []order{{Total: 5}, {Total: 0}}

	res, err := v.Validate(context.Background(), validation.NewInvocation(p))
	require.NoError(t, err)
	assert.Equal(t, []string{"Address.Line1", "Address.Town", "Orders[1].Total"}, paths(res))
	assert.Equal(t, validation.SeverityError, res.Failures[0].Severity)
	assert.Equal(t, validation.SeverityWarning, res.Failures[1].Severity)

	t.Run("subset failures are reported when included", func(t *testing.T) {
		res, err := v.Validate(context.Background(), validation.NewInvocation(p, validation.IncludeSubsets("Names")))
		require.NoError(t, err)
		assert.Equal(t, []string{"Name"}, paths(res))
	})

	t.Run("property selector", func(t *testing.T) {
		res, err := v.Validate(context.Background(), validation.NewInvocation(p, validation.IncludeProperties("Orders")))
		require.NoError(t, err)
		assert.Equal(t, []string{"Orders[1].Total"}, paths(res))
	})

	t.Run("nil nested pointer without tag is skipped", func(t *testing.T) {
		res, err := v.Validate(context.Background(), validation.NewInvocation(validPerson()))
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})
}

func TestValidator_Messages(t *testing.T) {
	t.Parallel()

	t.Run("english translator", func(t *testing.T) {
		t.Parallel()
		gv := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		trans, err := playground.NewEnglishTranslator(gv)
		require.NoError(t, err)

		v := playground.New[testModel](playground.WithValidate(gv), playground.WithTranslator(trans))
		assert.Same(t, gv, v.Engine())

		res, err := v.Validate(context.Background(), validation.NewInvocation(&testModel{IntFrom1To100: 5}))
		require.NoError(t, err)
		require.Len(t, res.Failures, 1)
		assert.Equal(t, "RequiredString is a required field", res.Failures[0].Message)
	})

	t.Run("message func", func(t *testing.T) {
		t.Parallel()
		v := playground.New[testModel](playground.WithMessageFunc(func(fe gvalidator.FieldError) string {
			return strings.ToLower(fe.Field()) + ":" + fe.Tag()
		}))
		res, err := v.Validate(context.Background(), validation.NewInvocation(testModel{IntFrom1To100: 0, RequiredString: "x"}))
		require.NoError(t, err)
		require.Len(t, res.Failures, 1)
		assert.Equal(t, "intfrom1to100:min", res.Failures[0].Message)
	})
}

func TestValidator_RuleMap(t *testing.T) {
	t.Parallel()

	rules, err := playground.LoadRuleMap(strings.NewReader("Username: required,min=3\n"))
	require.NoError(t, err)

	v := playground.New[account](playground.WithRuleMap(account{}, rules))

	res, err := v.Validate(context.Background(), validation.NewInvocation(&account{Username: "ab"}))
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "Username", res.Failures[0].Path)
	assert.Equal(t, "min", res.Failures[0].Rule)

	d := v.Descriptor()
	got := d.RulesForField("Username")
	require.Len(t, got, 2)
	assert.Equal(t, "required", got[0].Name)
	assert.Equal(t, "min", got[1].Name)
	assert.Empty(t, d.RulesForField("Nickname"))
}

func TestValidator_Descriptor(t *testing.T) {
	t.Parallel()

	d := playground.New[person]().Descriptor()

	name := d.RulesForField("Name")
	require.Len(t, name, 2)
	assert.Equal(t, validation.RuleInfo{Path: "Name", Name: "required", Subset: "Names"}, name[0])
	assert.Equal(t, "max", name[1].Name)

	total := d.RulesForField("Orders[3].Total")
	require.Len(t, total, 1)
	assert.Equal(t, "Orders[].Total", total[0].Path)

	assert.Len(t, d.RulesForField("Address.Town"), 1)
	assert.Empty(t, d.RulesForField("Orders"))
	assert.Empty(t, d.RulesForField("Address"))
	assert.Empty(t, d.RulesForField("Missing"))
	assert.Empty(t, d.RulesForField(""))
}

func TestValidator_Errors(t *testing.T) {
	t.Parallel()

	v := playground.New[person]()

	_, err := v.Validate(context.Background(), validation.NewInvocation(&account{}))
	assert.ErrorIs(t, err, playground.ErrUnexpectedModel)

	_, err = v.Validate(context.Background(), validation.NewInvocation((*person)(nil)))
	assert.ErrorIs(t, err, playground.ErrNilModel)

	_, err = v.Validate(context.Background(), nil)
	assert.ErrorIs(t, err, playground.ErrNilModel)
}

func TestLoadRuleMap(t *testing.T) {
	t.Parallel()

	rules, err := playground.LoadRuleMap(strings.NewReader("Name: required,max=50\nEmail: required,email\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Name": "required,max=50", "Email": "required,email"}, rules)

	rules, err = playground.LoadRuleMap(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rules)

	_, err = playground.LoadRuleMap(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, playground.ErrInvalidRuleMap)
}
