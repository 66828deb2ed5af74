package bootstrap

import (
	"net/http"

	"github.com/JaimeStill/scaffold/pkg/lifecycle"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	"github.com/JaimeStill/scaffold/pkg/routes"
)

// OpenAPIPath serves the document describing every bound route.
const OpenAPIPath = "/openapi.json"

// systemController labels the infrastructure routes in the route table.
const systemController = "system"

func systemRoutes(ready lifecycle.ReadinessChecker) routes.Group {
	return routes.Group{
		Tags: []string{"Infrastructure"},
		Routes: []routes.Route{
			{
				Method:  http.MethodGet,
				Pattern: "/healthz",
				Handler: handleHealthCheck,
				OpenAPI: &openapi.Operation{
					Summary: "Health check endpoint",
					Tags:    []string{"Infrastructure"},
					Responses: map[int]*openapi.Response{
						200: {Description: "Service is healthy"},
					},
				},
			},
			{
				Method:  http.MethodGet,
				Pattern: "/readyz",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					handleReadinessCheck(w, ready)
				},
				OpenAPI: &openapi.Operation{
					Summary: "Readiness check endpoint",
					Tags:    []string{"Infrastructure"},
					Responses: map[int]*openapi.Response{
						200: {Description: "Service is ready"},
						503: {Description: "Service not ready"},
					},
				},
			},
		},
	}
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
