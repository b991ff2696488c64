package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ClassDeck API",
        "description": "Classroom task management: published tasks, student submissions and announcements",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Account registration and sessions"},
        {"name": "Dashboard", "description": "Authenticated landing view"},
        {"name": "Tasks", "description": "Published tasks"},
        {"name": "Submissions", "description": "Student uploads and admin review"},
        {"name": "Announcements", "description": "Broadcast announcements"}
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
        "/login": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Login form",
                "responses": {
                    "200": {"description": "Form descriptor"}
                }
            },
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true},
                    {"name": "password", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Session token issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed"},
                    "401": {"description": "Invalid username or password"}
                }
            }
        },
        "/register": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Registration form",
                "responses": {
                    "200": {"description": "Form descriptor"}
                }
            },
            "post": {
                "tags": ["Authentication"],
                "summary": "Create account",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true},
                    {"name": "email", "in": "formData", "type": "string", "required": true},
                    {"name": "password", "in": "formData", "type": "string", "required": true},
                    {"name": "confirm", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "201": {"description": "Account created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Logout current session",
                "responses": {
                    "303": {"description": "Session revoked, redirect to login"}
                }
            }
        },
        "/": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "Current user with task and announcement feeds"},
                    "303": {"description": "Redirect to login when unauthenticated"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "responses": {
                    "200": {"description": "Tasks ordered by deadline descending"}
                }
            }
        },
        "/tasks/create": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Task form",
                "responses": {
                    "200": {"description": "Form descriptor"},
                    "303": {"description": "Redirect for non-admins"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Publish task",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "type": "string", "required": true},
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "deadline", "in": "formData", "type": "string"},
                    {"name": "attachment", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Task published"},
                    "400": {"description": "Validation failed"},
                    "303": {"description": "Redirect for non-admins"}
                }
            }
        },
        "/tasks/{id}/submit": {
            "get": {
                "tags": ["Submissions"],
                "summary": "Submission form",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Form descriptor with task"},
                    "404": {"description": "Task not found"}
                }
            },
            "post": {
                "tags": ["Submissions"],
                "summary": "Submit work for a task",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "201": {"description": "Submission stored"},
                    "400": {"description": "Validation failed"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/tasks/{id}/submissions": {
            "get": {
                "tags": ["Submissions"],
                "summary": "Review submissions",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Submissions with submitting users, newest first"},
                    "404": {"description": "Task not found"},
                    "303": {"description": "Redirect for non-admins"}
                }
            }
        },
        "/tasks/{id}/submissions/export": {
            "get": {
                "tags": ["Submissions"],
                "summary": "Export review sheet",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "CSV or PDF download"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements",
                "responses": {
                    "200": {"description": "Announcements, newest first"}
                }
            }
        },
        "/announcements/create": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Announcement form",
                "responses": {
                    "200": {"description": "Form descriptor"},
                    "303": {"description": "Redirect for non-admins"}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish announcement",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "title", "in": "formData", "type": "string", "required": true},
                    {"name": "content", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "201": {"description": "Announcement published"},
                    "400": {"description": "Validation failed"},
                    "303": {"description": "Redirect for non-admins"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
