package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/validator"
)

// Field is one hand-authored attribute descriptor used for schema
// discovery. Descriptors are static data, not reflection output.
type Field struct {
	Name     string
	Type     string
	Required bool
	Enum     []string
	Min      *float64
	Max      *float64
	Default  interface{}
}

// Definition binds an entity kind to its record factory and descriptor
// fields. New must return a pointer with the kind's defaults applied.
type Definition struct {
	Kind   string
	New    func() interface{}
	Fields []Field
}

// Describe renders the JSON-serializable schema descriptor for one kind.
func (d Definition) Describe() (map[string]interface{}, error) {
	if d.Kind == "" || d.New == nil || len(d.Fields) == 0 {
		return nil, fmt.Errorf("incomplete definition for kind %q", d.Kind)
	}

	properties := map[string]interface{}{}
	required := []string{}

	for _, f := range d.Fields {
		if f.Name == "" || f.Type == "" {
			return nil, fmt.Errorf("malformed field descriptor in kind %q", d.Kind)
		}

		prop := map[string]interface{}{"type": f.Type}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.Min != nil {
			prop["minimum"] = *f.Min
		}
		if f.Max != nil {
			prop["maximum"] = *f.Max
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		properties[f.Name] = prop

		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]interface{}{
		"title":      d.Kind,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}, nil
}

// Registry is the immutable kind → definition mapping, built once at
// process start. There is no runtime mutation.
type Registry struct {
	defs     map[string]Definition
	validate *validator.Validator
}

// NewRegistry builds the registry over every known entity kind.
func NewRegistry() *Registry {
	return newRegistry(definitions()...)
}

func newRegistry(defs ...Definition) *Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		m[d.Kind] = d
	}
	return &Registry{defs: m, validate: validator.New()}
}

// Has reports whether kind is a registered entity kind.
func (r *Registry) Has(kind string) bool {
	_, ok := r.defs[kind]
	return ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.defs))
	for kind := range r.defs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Validate decodes raw JSON into a fresh record of the given kind, applies
// the kind's defaults and checks every declared constraint. It returns the
// typed record or the field-level failures; the store is never touched on
// failure.
func (r *Registry) Validate(kind string, raw []byte) (interface{}, *ValidationError) {
	def, ok := r.defs[kind]
	if !ok {
		return nil, unknownKind(kind)
	}

	rec := def.New()
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, &ValidationError{
			Kind:   kind,
			Errors: []validator.FieldError{{Message: "body must be a JSON object"}},
		}
	}

	if verr := r.ValidateRecord(kind, rec); verr != nil {
		return nil, verr
	}
	return rec, nil
}

// ValidateRecord checks an already-typed record against the kind's rules.
func (r *Registry) ValidateRecord(kind string, rec interface{}) *ValidationError {
	if !r.Has(kind) {
		return unknownKind(kind)
	}
	if errs := r.validate.Validate(rec); len(errs) > 0 {
		return &ValidationError{Kind: kind, Errors: errs}
	}
	return nil
}

// Describe builds descriptors for every registered kind. A broken
// definition yields a per-kind error marker instead of blanking the map.
func (r *Registry) Describe() map[string]interface{} {
	out := make(map[string]interface{}, len(r.defs))
	for kind, def := range r.defs {
		desc, err := def.Describe()
		if err != nil {
			out[kind] = map[string]interface{}{"error": "schema generation failed"}
			continue
		}
		out[kind] = desc
	}
	return out
}
