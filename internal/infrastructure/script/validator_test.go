package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AcceptsDescriptionLookup(t *testing.T) {
	v := NewValidator()
	body := "const tag = document.querySelector(`meta[name=\"${name}\"]`);\n" +
		"if (tag !== null) { return tag.content; }\nreturn null;"

	require.NoError(t, v.ValidateFunctionBody(body, []string{"name"}))
	// Second call hits the memo.
	require.NoError(t, v.ValidateFunctionBody(body, []string{"name"}))
}

func TestValidator_AcceptsAwait(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.ValidateFunctionBody("const r = await fetch(u); return r.status;", []string{"u"}))
}

func TestValidator_RejectsSyntaxError(t *testing.T) {
	v := NewValidator()
	err := v.ValidateFunctionBody("var element = document.createElement('style';", nil)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "syntax")
}

func TestValidator_RejectsBadParamNames(t *testing.T) {
	v := NewValidator()
	assert.Error(t, v.ValidateFunctionBody("return 1;", []string{"a-b"}))
	assert.Error(t, v.ValidateFunctionBody("return 1;", []string{"){alert(1)}//"}))
}

func TestWrapAsyncFunction(t *testing.T) {
	assert.Equal(t, "(async function(css, id) {\nreturn 1;\n})", WrapAsyncFunction("return 1;", []string{"css", "id"}))
}
