package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resumenSchema describes the minimum shape the ficha resumen payload must
// have before normalization is attempted. The upstream API is loosely typed,
// so only the fields normalization actually depends on are required.
var resumenSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"datosSunat": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ruc":         map[string]any{"type": "string"},
				"razonSocial": map[string]any{"type": []any{"string", "null"}},
				"estado":      map[string]any{"type": []any{"string", "null"}},
				"condicion":   map[string]any{"type": []any{"string", "null"}},
			},
			"required": []any{"ruc"},
		},
		"conformacion": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"socios":         map[string]any{"type": []any{"array", "null"}},
				"representantes": map[string]any{"type": []any{"array", "null"}},
				"organosAdm":     map[string]any{"type": []any{"array", "null"}},
			},
		},
	},
	"required": []any{"datosSunat"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(resumenSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("resumen.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("resumen.json")
	})
	return compiledSchema, compileErr
}

// ValidateResumen checks a raw ficha resumen payload against the schema the
// normalizer expects.
func ValidateResumen(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal resumen: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("resumen does not match schema: %w", err)
	}
	return nil
}
