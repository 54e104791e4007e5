// Package swagger registers the API description served on /swagger.
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/ping": {"get": {"tags": ["test"], "summary": "Endpoint just pings the server", "responses": {"200": {"description": "OK"}}}},
        "/user/register": {"post": {"tags": ["user"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/user/login": {"post": {"tags": ["user"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/user/me": {"get": {"tags": ["user"], "summary": "Get the caller's profile", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/event/create": {"post": {"tags": ["event"], "summary": "Create an event", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/event/list": {"get": {"tags": ["event"], "summary": "List events", "responses": {"200": {"description": "OK"}}}},
        "/event/{id}": {"get": {"tags": ["event"], "summary": "Get an event as seen by the caller", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/event/join/{id}": {"get": {"tags": ["event"], "summary": "Join an event", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/event/invite/{id}": {"post": {"tags": ["event"], "summary": "Invite a user to an event", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/event/remove/{id}": {"post": {"tags": ["event"], "summary": "Remove a guest from an event", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/draw/{id}": {"get": {"tags": ["draw"], "summary": "Run the draw of an event", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/wishlist/add": {"post": {"tags": ["wishlist"], "summary": "Add an item to the caller's wishlist", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/wishlist/list": {"get": {"tags": ["wishlist"], "summary": "List the caller's wishlist", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/wishlist/delete/{id}": {"delete": {"tags": ["wishlist"], "summary": "Delete an item of the caller's wishlist", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/wishlist/draw/{uuid}": {"get": {"tags": ["wishlist"], "summary": "Get the wishlist of the receiver behind a draw token", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "uuid", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/wishlist/update/{uuid}/{itemId}": {"patch": {"tags": ["wishlist"], "summary": "Update the status of the receiver's wishlist item", "security": [{"ApiKeyAuth": []}], "parameters": [{"name": "uuid", "in": "path", "required": true, "type": "string"}, {"name": "itemId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "santa-family.fr",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Santa Family API",
	Description:      "Gin-Gonic server for the Santa Family gift exchange",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
