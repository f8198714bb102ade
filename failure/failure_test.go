package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		category Category
		name     string
		valid    bool
	}){
		{CATEGORY_SYNTAX, "SyntaxError", true},
		{CATEGORY_EVAL, "EvalError", true},
		{CATEGORY_RESOLVE, "ResolveError", true},
		{CATEGORY_INTERNAL, "InternalError", true},
		{Category(0), "Category(0)", false},
		{Category(5), "Category(5)", false},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.category.String())
		assert.Equal(entry.valid, entry.category.Valid(), entry.name)
	}
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		failure Failure
		err     error
	}){
		{"ok", Failure{Category: CATEGORY_EVAL, Message: "m"}, nil},
		{"positioned", Failure{Category: CATEGORY_SYNTAX, Message: "m", Position: &Position{"a", 1, 1}}, nil},
		{"category", Failure{Message: "m"}, ErrCategoryUnknown},
		{"message", Failure{Category: CATEGORY_EVAL}, ErrMessageEmpty},
		{"line", Failure{Category: CATEGORY_EVAL, Message: "m", Position: &Position{"a", 0, 1}}, ErrPositionInvalid},
		{"column", Failure{Category: CATEGORY_EVAL, Message: "m", Position: &Position{"a", 2, 0}}, ErrPositionInvalid},
	}

	for _, entry := range table {
		err := entry.failure.Validate()
		if entry.err == nil {
			assert.NoError(err, entry.name)
			continue
		}
		assert.ErrorIs(err, entry.err, entry.name)
		var contract *ErrContract
		assert.ErrorAs(err, &contract, entry.name)
	}
}

func TestFunction(t *testing.T) {
	assert := assert.New(t)

	fail := &Failure{}
	assert.Equal("", fail.Function())

	fail.CallStack = []Frame{{FunctionName: "inner"}, {FunctionName: "outer"}}
	assert.Equal("inner", fail.Function())
}
