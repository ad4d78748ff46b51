package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Terms API",
        "description": "Read-only JSON:API resource exposing academic term records",
        "version": "1.0.0"
    },
    "basePath": "/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Terms", "description": "Academic term catalog"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/terms": {
            "get": {
                "tags": ["Terms"],
                "summary": "List terms",
                "parameters": [
                    {"name": "academicYear", "in": "query", "type": "string"},
                    {"name": "calendarYear", "in": "query", "type": "string"},
                    {"name": "financialAidYear", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string", "format": "date"},
                    {"name": "housingDate", "in": "query", "type": "string", "format": "date"},
                    {"name": "registrationDate", "in": "query", "type": "string", "format": "date"},
                    {"name": "status", "in": "query", "type": "array", "collectionFormat": "multi", "items": {"type": "string", "enum": ["current", "post-interim", "pre-interim", "open", "completed", "not-open"]}},
                    {"name": "page[size]", "in": "query", "type": "integer"},
                    {"name": "page[number]", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TermsDocument"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorDocument"}}
                }
            }
        },
        "/terms/{termCode}": {
            "get": {
                "tags": ["Terms"],
                "summary": "Get term by term code",
                "parameters": [
                    {"name": "termCode", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TermDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorDocument"}}
                }
            }
        }
    },
    "definitions": {
        "TermResource": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["term"]},
                "id": {"type": "string"},
                "attributes": {
                    "type": "object",
                    "properties": {
                        "description": {"type": "string"},
                        "academicYear": {"type": "string"},
                        "financialAidYear": {"type": "string"},
                        "startDate": {"type": "string", "format": "date"},
                        "endDate": {"type": "string", "format": "date"},
                        "housingStartDate": {"type": "string", "format": "date"},
                        "housingEndDate": {"type": "string", "format": "date"},
                        "registrationStartDate": {"type": "string", "format": "date"},
                        "registrationEndDate": {"type": "string", "format": "date"},
                        "calendarYear": {"type": "string"},
                        "season": {"type": "string", "enum": ["Summer", "Fall", "Winter", "Spring"]},
                        "status": {"type": "array", "items": {"type": "string"}}
                    }
                },
                "links": {"type": "object"}
            }
        },
        "TermsDocument": {
            "type": "object",
            "properties": {
                "links": {"type": "object"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/TermResource"}},
                "meta": {
                    "type": "object",
                    "properties": {
                        "totalResults": {"type": "integer"},
                        "pageSize": {"type": "integer"},
                        "pageNumber": {"type": "integer"},
                        "totalPages": {"type": "integer"}
                    }
                }
            }
        },
        "TermDocument": {
            "type": "object",
            "properties": {
                "links": {"type": "object"},
                "data": {"$ref": "#/definitions/TermResource"}
            }
        },
        "ErrorDocument": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "status": {"type": "string"},
                            "code": {"type": "string"},
                            "detail": {"type": "string"}
                        }
                    }
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
