package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema/theme.cue
var schemaCUE []byte

const schemaDefinition = "#ThemeConfig"

// SchemaValidator checks the generic form of a document against the
// embedded CUE schema. The schema is closed, so misspelled keys such as
// `theme.extend.colour` are rejected instead of silently ignored.
//
// A SchemaValidator owns a cue.Context and must not be shared between
// goroutines.
type SchemaValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaCUE, cue.Filename("schema/theme.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	def := compiled.LookupPath(cue.ParsePath(schemaDefinition))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("looking up %s: %w", schemaDefinition, err)
	}

	return &SchemaValidator{ctx: ctx, schema: def}, nil
}

// Validate unifies the document with the schema. Violations are returned
// as ValidationErrors keyed by document path.
func (s *SchemaValidator) Validate(doc *Document) error {
	raw := dropNulls(doc.Raw)

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding document for schema check: %w", err)
	}

	filename := doc.Path
	if filename == "" {
		filename = "document.json"
	}
	v := s.ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return fmt.Errorf("compiling document for schema check: %w", err)
	}

	unified := s.schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return schemaErrors(err)
	}
	return nil
}

// dropNulls returns a copy of m without null-valued keys. A key written
// with no value (`plugins:`) means the same as an absent key.
func dropNulls(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			continue
		case map[string]any:
			out[k] = dropNulls(v)
		default:
			out[k] = v
		}
	}
	return out
}

// schemaErrors flattens CUE errors into ValidationErrors, dropping
// duplicates reported once per conjunct.
func schemaErrors(err error) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[string]bool)

	for _, e := range cueerrors.Errors(err) {
		path := e.Path()
		if len(path) > 0 && path[0] == schemaDefinition {
			path = path[1:]
		}
		field := strings.Join(path, ".")
		if field == "" {
			field = "document"
		}

		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)

		key := field + "\x00" + msg
		if seen[key] {
			continue
		}
		seen[key] = true
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "document", Message: err.Error()})
	}
	return errs
}
