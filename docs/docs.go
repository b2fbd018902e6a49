// Package docs holds the OpenAPI document for the list service.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/list/head": {
            "post": {
                "description": "Returns the first n strings of the posted list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["list"],
                "summary": "Head of a list",
                "parameters": [
                    {
                        "description": "List and count",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ListRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/v1/list/tail": {
            "post": {
                "description": "Returns the last n strings of the posted list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["list"],
                "summary": "Tail of a list",
                "parameters": [
                    {
                        "description": "List and count",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ListRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["VALIDATION_ERROR", "INTERNAL_ERROR"]},
                "error": {"type": "string"}
            }
        },
        "handlers.ListRequest": {
            "type": "object",
            "required": ["list"],
            "properties": {
                "list": {
                    "type": "array",
                    "maxItems": 10000,
                    "items": {"type": "string", "maxLength": 1000},
                    "example": ["apple", "banana", "cherry", "date"]
                },
                "n": {"type": "integer", "minimum": 1, "maximum": 10000, "default": 1, "example": 2}
            }
        },
        "models.ListResult": {
            "type": "object",
            "properties": {
                "result": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "List Service API",
	Description:      "Returns the head or tail of a posted list of strings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
