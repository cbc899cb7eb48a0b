// Package docs especificación OpenAPI del portal, registrada en swag.
package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swaggo/swag"
)

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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Iniciar sesión", "security": [],
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Cerrar sesión", "security": [], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/me": {
            "get": {
                "tags": ["users"], "summary": "Usuario autenticado", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}
            }
        },
        "/api/users": {
            "get": {
                "tags": ["users"], "summary": "Operadores (admin)", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "tags": ["dashboard"], "summary": "Contadores por estado y gráficos", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.Dashboard"}}}
            }
        },
        "/api/customers": {
            "post": {
                "tags": ["customers"], "summary": "Registrar cliente",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCustomerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/customers/search": {
            "get": {
                "tags": ["customers"], "summary": "Buscar por id de cliente o móvil", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "q", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Customer"}}}}
            }
        },
        "/api/customers/filter": {
            "get": {
                "tags": ["customers"], "summary": "Listado filtrado", "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "date_from", "type": "string"},
                    {"in": "query", "name": "date_to", "type": "string"},
                    {"in": "query", "name": "status", "type": "string", "enum": ["ACTIVE", "HOLD", "CLOSED"]},
                    {"in": "query", "name": "assigned_to_name", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Customer"}}}}
            }
        },
        "/api/customers/filter/pdf": {
            "get": {
                "tags": ["reports"], "summary": "Reporte PDF del listado filtrado", "produces": ["application/pdf"],
                "parameters": [
                    {"in": "query", "name": "date_from", "type": "string"},
                    {"in": "query", "name": "date_to", "type": "string"},
                    {"in": "query", "name": "status", "type": "string"},
                    {"in": "query", "name": "assigned_to_name", "type": "string"},
                    {"in": "query", "name": "preview", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "NO_DATA", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/customers/{id}": {
            "get": {
                "tags": ["customers"], "summary": "Cliente por id", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.Customer"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["customers"], "summary": "Editar cliente",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/customers/{id}/pdf": {
            "get": {
                "tags": ["reports"], "summary": "Reporte PDF de un cliente", "produces": ["application/pdf"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "query", "name": "preview", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "RENDER_FAILURE", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "expires_at": {"type": "string", "format": "date-time"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}
        },
        "dto.CreateCustomerRequest": {
            "type": "object",
            "required": ["fullname", "address", "reg_date"],
            "properties": {
                "fullname": {"type": "string"}, "address": {"type": "string"}, "reg_date": {"type": "string"},
                "mobile": {"type": "string"}, "email": {"type": "string"}, "note": {"type": "string"}
            }
        },
        "dto.UpdateCustomerRequest": {
            "type": "object",
            "properties": {
                "fullname": {"type": "string"}, "address": {"type": "string"}, "reg_date": {"type": "string"},
                "mobile": {"type": "string"}, "email": {"type": "string"}, "status": {"type": "string"},
                "notes": {"type": "array", "items": {"$ref": "#/definitions/entity.CustomerNote"}},
                "assigned_to": {"type": "string"}
            }
        },
        "entity.Customer": {
            "type": "object",
            "properties": {
                "customer_id": {"type": "string"}, "fullname": {"type": "string"}, "status": {"type": "string"},
                "hold_since": {"type": "string"}, "mobile": {"type": "string"}, "email": {"type": "string"},
                "reg_date": {"type": "string"}, "address": {"type": "string"}, "note": {"type": "string"},
                "notes": {"type": "array", "items": {"$ref": "#/definitions/entity.CustomerNote"}},
                "assigned_to": {"type": "string"}, "assigned_to_name": {"type": "string"}
            }
        },
        "entity.CustomerNote": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "note": {"type": "string"}}
        },
        "entity.Dashboard": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "object",
                    "properties": {"total": {"type": "integer"}, "active": {"type": "integer"}, "hold": {"type": "integer"}, "closed": {"type": "integer"}}
                },
                "graph": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo metadatos editables antes de servir la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Customer Portal API",
	Description:      "Clientes, tablero y reportes PDF sobre la API de clientes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// WriteFile escribe la especificación registrada en dir/swagger.json y
// devuelve la ruta, para servirla con el middleware de Swagger UI.
func WriteFile(dir string) (string, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return "", fmt.Errorf("docs: leer especificación: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("docs: crear directorio: %w", err)
	}
	path := filepath.Join(dir, "swagger.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("docs: escribir: %w", err)
	}
	return path, nil
}
