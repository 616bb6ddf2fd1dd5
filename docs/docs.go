// Package docs registers the OpenAPI document served under /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Welcome message",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/aigame.WelcomeResponse"}
                    }
                }
            }
        },
        "/generate_question": {
            "get": {
                "produces": ["application/json"],
                "summary": "Generate a learning question",
                "parameters": [
                    {
                        "type": "string",
                        "default": "math",
                        "description": "Question topic",
                        "name": "topic",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/aigame.QuestionResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    }
                }
            }
        },
        "/evaluate_answer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Evaluate an answer to a learning question",
                "parameters": [
                    {
                        "description": "Question and answer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aigame.evaluateAnswerPayload"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/aigame.FeedbackResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/aigame.ValidationErrorResponse"}
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/config.DetailResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "aigame.WelcomeResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "aigame.QuestionResponse": {
            "type": "object",
            "properties": {"question": {"type": "string"}}
        },
        "aigame.FeedbackResponse": {
            "type": "object",
            "properties": {"feedback": {"type": "string"}}
        },
        "aigame.evaluateAnswerPayload": {
            "type": "object",
            "required": ["answer", "question"],
            "properties": {
                "answer": {"type": "string"},
                "question": {"type": "string"}
            }
        },
        "aigame.ValidationIssue": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "aigame.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/aigame.ValidationIssue"}
                }
            }
        },
        "config.DetailResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GenAI Learning Games API",
	Description:      "Generates learning questions and evaluates answers with Google Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
