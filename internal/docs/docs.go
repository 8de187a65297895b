// Package docs holds the OpenAPI description served at /swagger. It is
// maintained by hand alongside the handler annotations and registered with
// swag at init.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Username taken", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.Identity"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database connectivity",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Database disconnected"}
                }
            }
        },
        "/trades": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["trades"],
                "summary": "List trades",
                "parameters": [
                    {"type": "string", "description": "Filter by symbol", "name": "symbol", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trade"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trades"],
                "summary": "Record a trade",
                "parameters": [
                    {"description": "Trade details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTradeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trade"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/trades/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["trades"],
                "summary": "Get a trade",
                "parameters": [{"type": "string", "description": "Trade ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trade"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["trades"],
                "summary": "Update a trade",
                "parameters": [
                    {"type": "string", "description": "Trade ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateTradeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trade"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["trades"],
                "summary": "Delete a trade",
                "parameters": [{"type": "string", "description": "Trade ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "List accounts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Account"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "Account details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateAccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Account"}}}
            }
        },
        "/accounts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Get an account",
                "parameters": [{"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Account"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Update an account",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateAccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Account"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Delete an account",
                "parameters": [{"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "409": {"description": "Account has expenses"}}
            }
        },
        "/expenses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["expenses"],
                "summary": "List expenses",
                "parameters": [{"type": "string", "description": "Filter by account", "name": "accountId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "DEBIT subtracts the amount from the account balance, CREDIT adds it. Both writes commit together.",
                "tags": ["expenses"],
                "summary": "Record an expense",
                "parameters": [
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateExpenseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/expenses/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["expenses"],
                "summary": "Get an expense",
                "parameters": [{"type": "string", "description": "Expense ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Expense"}}}
            }
        },
        "/todos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["todos"],
                "summary": "List todos",
                "parameters": [{"type": "boolean", "description": "Filter by completion", "name": "completed", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Todo"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["todos"],
                "summary": "Create a todo",
                "parameters": [
                    {"description": "Todo details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTodoRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Todo"}}}
            }
        },
        "/todos/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["todos"],
                "summary": "Get a todo",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Todo"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["todos"],
                "summary": "Update a todo",
                "parameters": [
                    {"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateTodoRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Todo"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [{"type": "string", "description": "Todo ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/plans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["plans"],
                "summary": "List plans for a day",
                "parameters": [{"type": "string", "description": "Day (YYYY-MM-DD)", "name": "date", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Plan"}}},
                    "400": {"description": "Date is required", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["plans"],
                "summary": "Create a plan",
                "parameters": [
                    {"description": "Plan details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreatePlanRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Plan"}}}
            }
        },
        "/plans/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["plans"],
                "summary": "Get a plan",
                "parameters": [{"type": "string", "description": "Plan ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Plan"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["plans"],
                "summary": "Update a plan",
                "parameters": [
                    {"type": "string", "description": "Plan ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePlanRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Plan"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["plans"],
                "summary": "Delete a plan",
                "parameters": [{"type": "string", "description": "Plan ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        }
    },
    "definitions": {
        "auth.Identity": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "role": {"type": "string"}}
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string"}}
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "role": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.CreateTradeRequest": {
            "type": "object",
            "required": ["symbol"],
            "properties": {
                "symbol": {"type": "string"}, "side": {"type": "string", "enum": ["BUY", "SELL"]},
                "quantity": {"type": "number"}, "entryPrice": {"type": "number"}, "exitPrice": {"type": "number"},
                "pnl": {"type": "number"}, "strategy": {"type": "string"}, "notes": {"type": "string"}, "date": {"type": "string"}
            }
        },
        "handlers.UpdateTradeRequest": {"$ref": "#/definitions/handlers.CreateTradeRequest"},
        "handlers.CreateAccountRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}, "type": {"type": "string"}, "broker": {"type": "string"},
                "currency": {"type": "string"}, "balance": {"type": "number"}
            }
        },
        "handlers.UpdateAccountRequest": {"$ref": "#/definitions/handlers.CreateAccountRequest"},
        "handlers.CreateExpenseRequest": {
            "type": "object",
            "required": ["accountId", "amount"],
            "properties": {
                "accountId": {"type": "string"}, "amount": {"type": "number"},
                "type": {"type": "string", "enum": ["DEBIT", "CREDIT"]},
                "category": {"type": "string"}, "description": {"type": "string"}, "date": {"type": "string"}
            }
        },
        "handlers.CreateTodoRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"}, "description": {"type": "string"}, "completed": {"type": "boolean"},
                "priority": {"type": "string"}, "dueDate": {"type": "string"}
            }
        },
        "handlers.UpdateTodoRequest": {"$ref": "#/definitions/handlers.CreateTodoRequest"},
        "handlers.CreatePlanRequest": {
            "type": "object",
            "required": ["date", "startTime", "title"],
            "properties": {
                "date": {"type": "string"}, "startTime": {"type": "string"}, "endTime": {"type": "string"},
                "title": {"type": "string"}, "type": {"type": "string"}, "notes": {"type": "string"}
            }
        },
        "handlers.UpdatePlanRequest": {"$ref": "#/definitions/handlers.CreatePlanRequest"},
        "models.Trade": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "symbol": {"type": "string"}, "side": {"type": "string"},
                "quantity": {"type": "number"}, "entryPrice": {"type": "number"}, "exitPrice": {"type": "number"},
                "pnl": {"type": "number"}, "strategy": {"type": "string"}, "notes": {"type": "string"},
                "date": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "type": {"type": "string"},
                "broker": {"type": "string"}, "currency": {"type": "string"}, "balance": {"type": "number"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "accountId": {"type": "string"}, "amount": {"type": "number"},
                "type": {"type": "string"}, "category": {"type": "string"}, "description": {"type": "string"},
                "date": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.Todo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "completed": {"type": "boolean"}, "priority": {"type": "string"}, "dueDate": {"type": "string"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.Plan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "date": {"type": "string"}, "startTime": {"type": "string"},
                "endTime": {"type": "string"}, "title": {"type": "string"}, "type": {"type": "string"},
                "notes": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
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
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Tradelog API",
	Description:      "Tradelog tracks trades, accounts, expenses, todos and daily plans for a single trader.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
