// Package docs registers the OpenAPI document served at /v1/swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["system"], "summary": "Service health", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}},
        "/rfid-scan": {"get": {"tags": ["rfid"], "summary": "Latest simulated RFID reading", "responses": {"200": {"description": "OK"}, "404": {"description": "No reading yet"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/auth/role": {"put": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Assign a role", "responses": {"200": {"description": "OK"}}}},
        "/mediators": {
            "get": {"tags": ["mediators"], "summary": "List mediators", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["mediators"], "summary": "Create a mediator", "responses": {"201": {"description": "Created"}}}
        },
        "/mediators/{id}": {
            "get": {"tags": ["mediators"], "summary": "Get a mediator", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["mediators"], "summary": "Update a mediator", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["mediators"], "summary": "Delete a mediator", "responses": {"200": {"description": "OK"}}}
        },
        "/employees/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "My employee profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Upsert my employee profile", "responses": {"200": {"description": "OK"}}}
        },
        "/employers/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "My employer profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Upsert my employer profile", "responses": {"200": {"description": "OK"}}}
        },
        "/job-postings": {
            "get": {"tags": ["job-postings"], "summary": "List open job postings", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["job-postings"], "summary": "Create a job posting", "responses": {"201": {"description": "Created"}}}
        },
        "/job-postings/export": {"get": {"security": [{"BearerAuth": []}], "tags": ["job-postings"], "summary": "Export my job postings", "responses": {"200": {"description": "File"}}}},
        "/saved-jobs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["saved-jobs"], "summary": "List saved jobs", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["saved-jobs"], "summary": "Save a job", "responses": {"201": {"description": "Created"}, "409": {"description": "Already saved"}}}
        },
        "/chain/status": {"get": {"tags": ["chain"], "summary": "Chain connection status", "responses": {"200": {"description": "OK"}}}},
        "/chain/payments": {"post": {"security": [{"BearerAuth": []}], "tags": ["chain"], "summary": "Create a GPS payment", "responses": {"202": {"description": "Submitted"}, "503": {"description": "No wallet provider"}}}},
        "/chain/payments/{id}/release": {"post": {"security": [{"BearerAuth": []}], "tags": ["chain"], "summary": "Release a GPS payment", "responses": {"202": {"description": "Submitted"}}}},
        "/uploads": {"post": {"security": [{"BearerAuth": []}], "tags": ["uploads"], "summary": "Upload an image", "responses": {"201": {"description": "Created"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "GPS Job Board API",
	Description:      "Job board backend with mediators, employer postings, an RFID simulator and GPS-verified on-chain payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
