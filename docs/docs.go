// Package docs holds the OpenAPI description served at /swagger.
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
        "/api/v1/catalog/{kind}/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List brands",
                "parameters": [
                    {"$ref": "#/parameters/kind"}
                ],
                "responses": {
                    "200": {"description": "kind, brands", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List models of a brand",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"type": "string", "description": "Brand; empty yields no models", "name": "brand", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "kind, brand, models", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/models/search": {
            "get": {
                "description": "Without a brand, every model is searched. Non-matching models are returned with hidden=true.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Search models",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"type": "string", "description": "Case-insensitive substring", "name": "q", "in": "query"},
                    {"type": "string", "description": "Restrict to brand", "name": "brand", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "kind, brand, query, models", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/options": {
            "get": {
                "description": "An empty brand is back-filled from the first record of the model.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List service options",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"type": "string", "description": "Brand", "name": "brand", "in": "query"},
                    {"type": "string", "description": "Model", "name": "model", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "kind, brand, model, options", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/view": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Resolve the selector cascade",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"type": "string", "description": "Selected brand", "name": "brand", "in": "query"},
                    {"type": "string", "description": "Selected model", "name": "model", "in": "query"},
                    {"type": "integer", "description": "Selected option index", "name": "option", "in": "query"},
                    {"type": "string", "description": "Model search text", "name": "search", "in": "query"},
                    {"enum": ["brand", "model", "option", "search"], "type": "string", "description": "Control just changed", "name": "changed", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.View"}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog status",
                "parameters": [
                    {"$ref": "#/parameters/kind"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CatalogStatus"}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/catalog/{kind}/reload": {
            "post": {
                "description": "Queues a refetch of the sheet. With wait=true the sheet is fetched before responding.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Reload a catalog",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"type": "boolean", "description": "Fetch synchronously", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CatalogStatus"}},
                    "202": {"description": "Accepted", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"$ref": "#/responses/error"},
                    "502": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/inquiry": {
            "post": {
                "description": "Fields are not validated; empty values yield empty message lines.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inquiry"],
                "summary": "Compose a WhatsApp inquiry",
                "parameters": [
                    {"description": "Selected item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InquiryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Inquiry"}},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/leads": {
            "post": {
                "description": "Records the contact and marks the popup shown for this browser session.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Capture a lead",
                "parameters": [
                    {"description": "Contact details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LeadRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Lead"}},
                    "400": {"$ref": "#/responses/error"},
                    "500": {"$ref": "#/responses/error"}
                }
            }
        },
        "/api/v1/theme": {
            "get": {
                "description": "Applies the one-time dark default for new visitors.",
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Current theme",
                "responses": {
                    "200": {"description": "theme, glyph", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/theme/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Toggle theme",
                "responses": {
                    "200": {"description": "theme, glyph", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"$ref": "#/responses/error"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "WebSocket. Sends {\"type\":\"catalog\",\"data\":CatalogStatus} immediately and on every tick.",
                "tags": ["catalog"],
                "summary": "Catalog status stream",
                "parameters": [
                    {"enum": ["repair", "parts"], "type": "string", "description": "Catalog", "name": "catalog", "in": "query"},
                    {"type": "string", "description": "Tick, e.g. 500ms (max 10s)", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Tick in milliseconds", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "400": {"$ref": "#/responses/error"}
                }
            }
        }
    },
    "parameters": {
        "kind": {"enum": ["repair", "parts"], "type": "string", "description": "Catalog", "name": "kind", "in": "path", "required": true}
    },
    "responses": {
        "error": {"description": "Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
    },
    "definitions": {
        "catalog.ModelOption": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "hidden": {"type": "boolean"}
            }
        },
        "catalog.Option": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "catalog.View": {
            "type": "object",
            "properties": {
                "brand": {"type": "string"},
                "model": {"type": "string"},
                "option": {"type": "integer"},
                "search": {"type": "string"},
                "brands": {"type": "array", "items": {"type": "string"}},
                "models": {"type": "array", "items": {"$ref": "#/definitions/catalog.ModelOption"}},
                "model_placeholder": {"type": "string"},
                "model_enabled": {"type": "boolean"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/catalog.Option"}},
                "option_enabled": {"type": "boolean"},
                "service": {"type": "string"},
                "price": {"type": "string"},
                "result_visible": {"type": "boolean"}
            }
        },
        "handlers.InquiryRequest": {
            "type": "object",
            "properties": {
                "brand": {"type": "string", "example": "Apple"},
                "model": {"type": "string", "example": "iPhone 12"},
                "service": {"type": "string", "example": "Battery"},
                "price": {"type": "string", "example": "49"}
            }
        },
        "handlers.LeadRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Ravi"},
                "shop": {"type": "string", "example": "Ravi Mobiles"},
                "address": {"type": "string", "example": "12 MG Road"},
                "phone": {"type": "string", "example": "9876543210"}
            }
        },
        "models.CatalogStatus": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "loaded": {"type": "boolean"},
                "records": {"type": "integer"},
                "skipped": {"type": "integer"},
                "brands": {"type": "integer"},
                "loaded_at": {"type": "string"},
                "last_error": {"type": "string"}
            }
        },
        "models.Inquiry": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "models.Lead": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "shop": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "captured_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Price catalog, WhatsApp inquiry, theme and lead endpoints behind the storefront pages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
