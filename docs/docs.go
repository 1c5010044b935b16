// Package docs registers the swagger document served at /swagger.
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
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account and its profile",
                "parameters": [
                    {"description": "Signup data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/verify": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check that the bearer token is valid",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VerifyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/signout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Revoke the bearer token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update own profile",
                "parameters": [
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Delete own profile, its shareables and friendships",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/friends": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "List friends and pending requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.FriendLists"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "Send a friend request by email",
                "parameters": [
                    {"description": "Target email", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FriendRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/friends/confirm/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "Confirm a pending friend request",
                "parameters": [
                    {"type": "string", "description": "Requester profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/friends/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "View a friend's profile",
                "parameters": [
                    {"type": "string", "description": "Friend profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.FriendProfile"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["friends"],
                "summary": "Remove a friendship",
                "parameters": [
                    {"type": "string", "description": "Friend profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/shareables": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["shareables"],
                "summary": "List own shareables",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Shareable"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shareables"],
                "summary": "Post a shareable",
                "parameters": [
                    {"description": "Shareable", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ShareableRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Shareable"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/shareables/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shareables"],
                "summary": "Edit an owned shareable",
                "parameters": [
                    {"type": "string", "description": "Shareable ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ShareableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Shareable"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["shareables"],
                "summary": "Delete an owned shareable",
                "parameters": [
                    {"type": "string", "description": "Shareable ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/profile/feed": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["feed"],
                "summary": "Friends' high-priority giving and requesting shareables",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.FeedItem"}}}
                }
            }
        },
        "/plans": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Create a plan",
                "parameters": [
                    {"description": "Plan", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlanRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Plan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/plans/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Get a plan owned by the caller or one of their friends",
                "parameters": [
                    {"type": "string", "description": "Plan ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Plan"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"error": {}, "code": {"type": "string"}}
        },
        "service.AuthResult": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "name": {"type": "string"}}
        },
        "service.FriendLists": {
            "type": "object",
            "properties": {
                "friends": {"type": "array", "items": {"$ref": "#/definitions/model.FriendSummary"}},
                "pendingFriends": {"type": "array", "items": {"$ref": "#/definitions/model.FriendSummary"}}
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"}, "password": {"type": "string"},
                "firstName": {"type": "string"}, "lastName": {"type": "string"}
            }
        },
        "handler.SigninRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.VerifyResponse": {
            "type": "object",
            "properties": {"verified": {"type": "boolean"}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.FriendRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "handler.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"}, "lastName": {"type": "string"},
                "pictureUrl": {"type": "string"}, "email": {"type": "string"},
                "contact": {"type": "array", "items": {"type": "string"}},
                "availability": {"type": "object"}
            }
        },
        "handler.ShareableRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["giving", "requesting", "plans"]},
                "priority": {"type": "integer", "enum": [0, 1, 2]},
                "groupSize": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "date": {"type": "string", "format": "date-time", "x-nullable": true},
                "expiration": {"type": "string", "format": "date-time", "x-nullable": true},
                "confirmed": {"type": "boolean"}, "archived": {"type": "boolean"},
                "repeats": {"type": "integer", "x-nullable": true}
            }
        },
        "handler.PlanRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "priorities": {"type": "array", "items": {"type": "integer"}},
                "groupSize": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "date": {"type": "string"}, "expiration": {"type": "string"},
                "confirmed": {"type": "boolean"}, "archived": {"type": "boolean"},
                "repeats": {"type": "integer"}
            }
        },
        "model.FriendSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "firstName": {"type": "string"},
                "lastName": {"type": "string"}, "pictureUrl": {"type": "string"}
            }
        },
        "model.Shareable": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "ownerId": {"type": "string"},
                "name": {"type": "string"}, "priority": {"type": "integer"},
                "groupSize": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "date": {"type": "string"}, "expiration": {"type": "string"},
                "confirmed": {"type": "boolean"}, "archived": {"type": "boolean"},
                "repeats": {"type": "integer"}, "type": {"type": "string"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "model.FeedItem": {
            "allOf": [
                {"$ref": "#/definitions/model.Shareable"},
                {"type": "object", "properties": {"owner": {"type": "string"}}}
            ]
        },
        "model.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "firstName": {"type": "string"},
                "lastName": {"type": "string"}, "pictureUrl": {"type": "string"},
                "email": {"type": "string"},
                "contact": {"type": "array", "items": {"type": "string"}},
                "availability": {"type": "object"},
                "friends": {"type": "array", "items": {"type": "string"}},
                "pendingFriends": {"type": "array", "items": {"type": "string"}},
                "shareables": {"type": "array", "items": {"$ref": "#/definitions/model.Shareable"}},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "model.FriendProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "firstName": {"type": "string"},
                "lastName": {"type": "string"}, "pictureUrl": {"type": "string"},
                "email": {"type": "string"},
                "contact": {"type": "array", "items": {"type": "string"}},
                "availability": {"type": "object"},
                "shareables": {"type": "array", "items": {"$ref": "#/definitions/model.Shareable"}}
            }
        },
        "model.Plan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "ownerId": {"type": "string"},
                "name": {"type": "string"},
                "priorities": {"type": "array", "items": {"type": "integer"}},
                "groupSize": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "date": {"type": "string"}, "expiration": {"type": "string"},
                "confirmed": {"type": "boolean"}, "archived": {"type": "boolean"},
                "repeats": {"type": "integer"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "ShareCircle API",
	Description:      "Social sharing API: profiles, friend requests, shareables and a friends feed.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
