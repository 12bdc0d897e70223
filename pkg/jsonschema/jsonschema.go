// Package jsonschema provides JSON Schema reflection over the generator's
// input document types, so authoring pipelines can validate tokens, themes,
// and metadata documents before running generation.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	invopopjsonschema "github.com/invopop/jsonschema"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

type Reflector struct {
	Reflector *invopopjsonschema.Reflector
}

func NewReflector() *Reflector {
	return &Reflector{
		Reflector: &invopopjsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		},
	}
}

func (r *Reflector) Reflect(t reflect.Type) *invopopjsonschema.Schema {
	return r.Reflector.ReflectFromType(t)
}

// WriteSchema writes the schema to w as indented JSON with a trailing
// newline.
func WriteSchema(s *invopopjsonschema.Schema, w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrJSONMarshal, err)
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWrite, err)
	}

	return nil
}
