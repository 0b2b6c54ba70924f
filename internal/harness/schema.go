package harness

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// validateSchema unifies the decoded suite with the embedded #Suite
// definition and reports every violation CUE finds.
//
// A cue.Context is not safe for concurrent use, so each call builds its own.
func validateSchema(s *Suite) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile suite schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Suite"))
	if !def.Exists() {
		return fmt.Errorf("suite schema has no #Suite definition")
	}

	value := ctx.Encode(s)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode suite: %w", err)
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %s", errors.Details(err, nil))
	}
	return nil
}
