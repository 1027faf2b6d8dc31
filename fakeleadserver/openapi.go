package main

import "github.com/getkin/kin-openapi/openapi3"

// apiDoc describes the routes the server actually registers, so a
// consumer can point schema tooling at /openapi.json.
func apiDoc() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info:    &openapi3.Info{Title: "fakeleadserver", Version: "0.1.0"},
		Paths: openapi3.Paths{
			"/leads": &openapi3.PathItem{
				Get: &openapi3.Operation{
					Summary:   "Fetch the generated leads document",
					Responses: docResponses("A leads envelope"),
				},
				Post: &openapi3.Operation{
					Summary:   "Append a lead",
					Responses: docResponses("The created lead"),
				},
			},
			"/leads/{id}": &openapi3.PathItem{
				Get: &openapi3.Operation{
					Summary:   "Fetch one lead by _id",
					Responses: docResponses("A single lead"),
				},
			},
		},
	}
}

func docResponses(description string) openapi3.Responses {
	return openapi3.Responses{
		"200": &openapi3.ResponseRef{
			Value: &openapi3.Response{Description: &description},
		},
	}
}
