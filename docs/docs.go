// Package docs FuelPark API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния сервиса",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/gas-stations/provinces": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GasStations"],
                "summary": "Список провинций",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/gas-stations/localities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GasStations"],
                "summary": "Населённые пункты провинции",
                "parameters": [
                    {"type": "string", "description": "Провинция", "name": "province", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/gas-stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GasStations"],
                "summary": "Заправки населённого пункта",
                "parameters": [
                    {"type": "string", "description": "Населённый пункт", "name": "locality", "in": "query", "required": true},
                    {"type": "number", "description": "Широта пользователя", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота пользователя", "name": "lon", "in": "query"},
                    {"type": "string", "default": "distance", "description": "distance | price", "name": "sort", "in": "query"},
                    {"type": "string", "default": "gasolina95E5", "description": "Тип топлива", "name": "fuel", "in": "query"},
                    {"type": "string", "default": "asc", "description": "asc | desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StationListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/gas-stations/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GasStations"],
                "summary": "Заправки рядом с точкой",
                "parameters": [
                    {"type": "number", "description": "Широта", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота", "name": "lon", "in": "query", "required": true},
                    {"type": "number", "default": 15, "description": "Радиус поиска, км", "name": "radius_km", "in": "query"},
                    {"type": "string", "default": "distance", "description": "distance | price", "name": "sort", "in": "query"},
                    {"type": "string", "default": "gasolina95E5", "description": "Тип топлива", "name": "fuel", "in": "query"},
                    {"type": "string", "default": "asc", "description": "asc | desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StationListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/gas-stations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["GasStations"],
                "summary": "Заправка по ID",
                "parameters": [
                    {"type": "integer", "description": "ID заправки", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "Широта пользователя", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота пользователя", "name": "lon", "in": "query"},
                    {"type": "string", "default": "gasolina95E5", "description": "Тип топлива", "name": "fuel", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StationItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/parkings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Parkings"],
                "summary": "Список парковок",
                "parameters": [
                    {"type": "number", "description": "Широта пользователя", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота пользователя", "name": "lon", "in": "query"},
                    {"type": "string", "default": "distance", "description": "distance | price | slots", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc | desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ParkingListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/parkings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Parkings"],
                "summary": "Парковка по ID",
                "parameters": [
                    {"type": "string", "description": "ID парковки", "name": "id", "in": "path", "required": true},
                    {"type": "number", "description": "Широта пользователя", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота пользователя", "name": "lon", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ParkingItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {"description": "Имя и пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Вход пользователя",
                "parameters": [
                    {"description": "Имя и пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Смена пароля",
                "parameters": [
                    {"description": "Текущий и новый пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PasswordChangedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/loyalty/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Loyalty"],
                "summary": "Баланс баллов",
                "parameters": [
                    {"type": "string", "description": "ID пользователя (UUID)", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoyaltyBalanceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/loyalty/{user_id}/scan": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Loyalty"],
                "summary": "Скан чека",
                "description": "Баллы начисляются асинхронно, ответ 202 со статусом pending",
                "parameters": [
                    {"type": "string", "description": "ID пользователя (UUID)", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/dto.ScanReceiptResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "sort": {"type": "string"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        },
        "dto.StationItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "address": {"type": "string"},
                "locality": {"type": "string"},
                "province": {"type": "string"},
                "brand": {"type": "string"},
                "service": {"type": "string"},
                "schedule": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "fuel": {"type": "string"},
                "price": {"type": "number"},
                "prices": {"type": "object", "additionalProperties": {"type": "number"}},
                "distance_km": {"type": "number"},
                "maps_url": {"type": "string"}
            }
        },
        "dto.StationListResponse": {
            "type": "object",
            "properties": {
                "stations": {"type": "array", "items": {"$ref": "#/definitions/dto.StationItem"}},
                "total": {"type": "integer"},
                "sort": {"type": "string"},
                "order": {"type": "string"},
                "fuel": {"type": "string"}
            }
        },
        "dto.ParkingItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "description": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "price": {"type": "number"},
                "slots": {"type": "integer"},
                "has_free_slots": {"type": "boolean"},
                "distance_km": {"type": "number"},
                "navigation": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.ParkingListResponse": {
            "type": "object",
            "properties": {
                "parkings": {"type": "array", "items": {"$ref": "#/definitions/dto.ParkingItem"}},
                "total": {"type": "integer"},
                "sort": {"type": "string"},
                "order": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 3, "maxLength": 64},
                "password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.ChangePasswordRequest": {
            "type": "object",
            "required": ["username", "current_password", "new_password"],
            "properties": {
                "username": {"type": "string"},
                "current_password": {"type": "string"},
                "new_password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "dto.PasswordChangedResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "username": {"type": "string"},
                "points": {"type": "integer"}
            }
        },
        "dto.LoyaltyBalanceResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "points": {"type": "integer"},
                "reward_points": {"type": "integer"},
                "points_to_reward": {"type": "integer"},
                "reward_available": {"type": "boolean"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.ScanReceiptResponse": {
            "type": "object",
            "properties": {
                "scan_id": {"type": "string"},
                "user_id": {"type": "string"},
                "points": {"type": "integer"},
                "message_id": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "FuelPark API",
	Description:      "Заправки и парковки рядом с пользователем, программа лояльности за сканы чеков.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
