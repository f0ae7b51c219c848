// Package docs регистрирует OpenAPI-описание для /swagger/.
// Перегенерировать: swag init -g cmd/main.go
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
        "/authors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Список авторов",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.AuthorResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Создать автора",
                "parameters": [
                    {"description": "Данные автора", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateAuthorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.AuthorResponse"}},
                    "400": {"description": "Missing field / Username already taken", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/authors/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Обновить автора",
                "parameters": [
                    {"type": "string", "description": "ID автора", "name": "id", "in": "path", "required": true},
                    {"description": "id обязателен и должен совпадать с путём", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateAuthorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AuthorResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["authors"],
                "summary": "Удалить автора вместе с его постами",
                "parameters": [
                    {"type": "string", "description": "ID автора", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/blogposts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["blogposts"],
                "summary": "Список постов",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BlogPostListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogposts"],
                "summary": "Создать пост",
                "parameters": [
                    {"description": "Данные поста", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateBlogPostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.CreatedBlogPostResponse"}},
                    "400": {"description": "Missing field / Author not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/blogposts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["blogposts"],
                "summary": "Получить пост по ID",
                "parameters": [
                    {"type": "string", "description": "ID поста", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BlogPostResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["blogposts"],
                "summary": "Обновить пост (title, content)",
                "parameters": [
                    {"type": "string", "description": "ID поста", "name": "id", "in": "path", "required": true},
                    {"description": "id обязателен и должен совпадать с путём", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateBlogPostRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdatedBlogPostResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["blogposts"],
                "summary": "Удалить пост",
                "parameters": [
                    {"type": "string", "description": "ID поста", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Проверка доступности хранилища",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.AuthorResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "userName": {"type": "string"}}
        },
        "models.CreateAuthorRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string", "example": "Ada"},
                "lastName": {"type": "string", "example": "Lovelace"},
                "userName": {"type": "string", "example": "ada"}
            }
        },
        "models.UpdateAuthorRequest": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "userName": {"type": "string"}}
        },
        "models.BlogPostResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "author": {"type": "string"}, "content": {"type": "string"}}
        },
        "models.BlogPostListResponse": {
            "type": "object",
            "properties": {"blogposts": {"type": "array", "items": {"$ref": "#/definitions/models.BlogPostResponse"}}}
        },
        "models.Comment": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "content": {"type": "string"}}
        },
        "models.CreateBlogPostRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "T"},
                "content": {"type": "string", "example": "C"},
                "author_id": {"type": "string", "example": "6523f1c2a1b2c3d4e5f60718"}
            }
        },
        "models.CreatedBlogPostResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "author": {"type": "string"},
                "content": {"type": "string"},
                "title": {"type": "string"},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}
            }
        },
        "models.UpdateBlogPostRequest": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "content": {"type": "string"}}
        },
        "models.UpdatedBlogPostResponse": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "content": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "Авторы и посты блога.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
