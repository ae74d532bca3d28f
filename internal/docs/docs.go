// Package docs registra el OpenAPI de /api para swaggo (servido en /swagger).
// Mantener en sync con las anotaciones @Router de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas (orden de creación)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "mascota", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/api/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [{"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualizar mascota (merge parcial)",
                "parameters": [
                    {"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true},
                    {"description": "campos a cambiar", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.updatePetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Borrar mascota (idempotente)",
                "parameters": [{"type": "integer", "description": "id", "name": "petID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Tema efectivo (guardado, SO o light)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/theme.themeResponse"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Guardar tema",
                "parameters": [
                    {"description": "light|dark", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/theme.putThemeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/theme.themeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "pets.Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "pets.updatePetRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "pets.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "theme.themeResponse": {
            "type": "object",
            "properties": {"theme": {"type": "string", "enum": ["light", "dark"]}}
        },
        "theme.putThemeRequest": {
            "type": "object",
            "properties": {"theme": {"type": "string", "enum": ["light", "dark"]}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Manager API",
	Description:      "CRUD de mascotas y preferencia de tema.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
