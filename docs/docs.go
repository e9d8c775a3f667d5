// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/branding": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Accepts a full youtube.com watch URL, a youtu.be short URL or a bare 11 character video ID and returns the community submitted titles and thumbnails.",
                "produces": ["application/json"],
                "tags": ["branding"],
                "summary": "Look up DeArrow branding for a YouTube video",
                "parameters": [
                    {
                        "type": "string",
                        "description": "YouTube URL or video ID",
                        "name": "video",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BrandingLookupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/wisdom": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["wisdom"],
                "summary": "Dispense fox wisdom",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WisdomResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check the health of the service and its dependencies",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the service is alive",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the service is ready to accept requests",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handlers.ServiceHealth"}},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "handlers.ServiceHealth": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "response_time": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.BrandingLookupResponse": {
            "type": "object",
            "properties": {
                "random_time": {"type": "integer"},
                "thumbnails": {"type": "array", "items": {"$ref": "#/definitions/models.ThumbnailItem"}},
                "titles": {"type": "array", "items": {"$ref": "#/definitions/models.TitleItem"}},
                "video_duration": {"type": "integer"},
                "video_id": {"type": "string", "example": "oBnCgu7bdQk"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.ThumbnailItem": {
            "type": "object",
            "properties": {
                "locked": {"type": "boolean"},
                "original": {"type": "boolean"},
                "timestamp": {"type": "integer"},
                "uuid": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "models.TitleItem": {
            "type": "object",
            "properties": {
                "locked": {"type": "boolean"},
                "original": {"type": "boolean"},
                "title": {"type": "string"},
                "uuid": {"type": "string"},
                "votes": {"type": "integer"}
            }
        },
        "models.WisdomResponse": {
            "type": "object",
            "properties": {
                "wisdom": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "API key authentication",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Rusty Reel API",
	Description:      "DeArrow branding lookups and fox wisdom, the same commands the chat bot serves.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
