package routes

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/pkg/openapi"
)

// ErrorSchema names the component describing {"error": "..."} payloads.
const ErrorSchema = "Error"

// Document adds an operation to spec for every binding. Bindings that carry
// a declared operation keep it; the rest get a summary generated from the
// controller and action, tagged by controller.
func Document(spec *openapi.Spec, bindings []Binding) *openapi.Spec {
	if spec.Components == nil {
		spec.Components = openapi.NewComponents()
	}
	spec.Components.AddSchemas(map[string]*openapi.Schema{
		ErrorSchema: {
			Type:       "object",
			Properties: map[string]*openapi.Property{"error": {Type: "string"}},
			Required:   []string{"error"},
		},
	})

	for _, b := range bindings {
		op := b.Operation
		if op == nil {
			op = operation(b)
		}
		spec.AddOperation(b.Path, b.Method, op)
	}
	return spec
}

func operation(b Binding) *openapi.Operation {
	summary := fmt.Sprintf("%s %s", b.Method, b.Path)
	if b.Action != "" {
		summary = fmt.Sprintf("%s.%s", b.Controller, b.Action)
	}

	op := &openapi.Operation{
		Summary:   summary,
		Tags:      []string{b.Controller},
		Responses: map[int]*openapi.Response{200: {Description: "OK"}},
	}

	for _, seg := range strings.Split(b.Path, "/") {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			op.Parameters = append(op.Parameters, openapi.PathParam(name, b.Controller+" "+name))
		}
	}
	if len(op.Parameters) > 0 {
		op.Responses[404] = openapi.ResponseJSON("Not found", ErrorSchema)
	}
	if b.Action == controllers.Store || b.Action == controllers.Update {
		op.Responses[400] = openapi.ResponseJSON("Invalid request", ErrorSchema)
	}
	return op
}
