package harness

import (
	_ "embed"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// validateSchema checks a decoded YAML document against #Scenario.
func validateSchema(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return invalidScenario("compile schema: %v", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	data := ctx.Encode(doc)
	if err := data.Err(); err != nil {
		return invalidScenario("encode document: %v", err)
	}

	v := def.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return invalidScenario("schema: %s", formatCUEError(err))
	}
	return nil
}

// formatCUEError flattens a CUE error list into one line per error.
func formatCUEError(err error) string {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, strings.TrimSpace(e.Error()))
	}
	return strings.Join(msgs, "; ")
}
