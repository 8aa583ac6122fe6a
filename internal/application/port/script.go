package port

// ScriptValidator checks JavaScript source before it is sent to the engine.
type ScriptValidator interface {
	// ValidateFunctionBody reports a syntax error in body, parsed as the
	// body of an async function with the given parameter names.
	ValidateFunctionBody(body string, params []string) error
}
