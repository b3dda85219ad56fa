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
        "/api/v1/admin/feePercentage": {
            "post": {
                "security": [
                    {
                        "CallerAddressHeader": []
                    }
                ],
                "description": "Updates the setup fee in basis points (max 1000). Owner only. Affects subsequent creations only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update Setup Fee Percentage",
                "operationId": "api_v1_post_fee_percentage",
                "parameters": [
                    {
                        "description": "Update fee percentage request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateFeePercentageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UpdateFeePercentageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/admin/feeRecipient": {
            "post": {
                "security": [
                    {
                        "CallerAddressHeader": []
                    }
                ],
                "description": "Updates the setup fee recipient. Owner only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Update Fee Recipient",
                "operationId": "api_v1_post_fee_recipient",
                "parameters": [
                    {
                        "description": "Update fee recipient request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateFeeRecipientRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UpdateFeeRecipientResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/beneficiaries": {
            "get": {
                "description": "Returns beneficiaries in enumeration order. The order is append-only and index-stable.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Get Beneficiaries",
                "operationId": "api_v1_get_beneficiaries",
                "parameters": [
                    {
                        "maximum": 1000,
                        "minimum": 1,
                        "type": "integer",
                        "default": 100,
                        "description": "Limit number of rows.",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "default": 0,
                        "description": "Skip first N rows.",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/BeneficiariesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/beneficiary": {
            "get": {
                "description": "Returns the beneficiary at the given enumeration index.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Get Beneficiary",
                "operationId": "api_v1_get_beneficiary",
                "parameters": [
                    {
                        "minimum": 0,
                        "type": "integer",
                        "description": "Beneficiary index.",
                        "name": "index",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/BeneficiaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "description": "Returns the activity feed: schedule creations, releases and revocations.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get Events",
                "operationId": "api_v1_get_events",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Beneficiary addresses.",
                        "name": "beneficiary",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "enum": [
                                "schedule_created",
                                "tokens_released",
                                "schedule_revoked"
                            ],
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Event types.",
                        "name": "event_type",
                        "in": "query"
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "description": "Query events created **after** given timestamp.",
                        "name": "start_utime",
                        "in": "query"
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "description": "Query events created **before** given timestamp.",
                        "name": "end_utime",
                        "in": "query"
                    },
                    {
                        "maximum": 1000,
                        "minimum": 1,
                        "type": "integer",
                        "default": 100,
                        "description": "Limit number of rows.",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "default": 0,
                        "description": "Skip first N rows.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "asc",
                            "desc"
                        ],
                        "type": "string",
                        "default": "desc",
                        "description": "Sort events by id.",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/EventsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/info": {
            "get": {
                "description": "Get the ledger configuration: owner, fee recipient, setup fee and treasury balance.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Get Vesting Info",
                "operationId": "api_v1_get_info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/VestingInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/release": {
            "post": {
                "security": [
                    {
                        "CallerAddressHeader": []
                    }
                ],
                "description": "Releases the caller's releasable amount to the caller's wallet.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mutations"
                ],
                "summary": "Release Tokens",
                "operationId": "api_v1_post_release",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ReleaseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/revoke": {
            "post": {
                "security": [
                    {
                        "CallerAddressHeader": []
                    }
                ],
                "description": "Revokes a revocable schedule. Owner only. Vesting stops accruing; the already-vested amount remains releasable.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mutations"
                ],
                "summary": "Revoke Schedule",
                "operationId": "api_v1_post_revoke",
                "parameters": [
                    {
                        "description": "Revoke schedule request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RevokeScheduleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/RevokeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/schedule": {
            "post": {
                "security": [
                    {
                        "CallerAddressHeader": []
                    }
                ],
                "description": "Creates a vesting schedule for a beneficiary. Owner only. The setup fee is deducted from the gross amount and sent to the fee recipient; the remainder becomes the vesting principal.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mutations"
                ],
                "summary": "Create Schedule",
                "operationId": "api_v1_post_schedule",
                "parameters": [
                    {
                        "description": "Create schedule request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateScheduleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CreateScheduleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/schedules": {
            "get": {
                "description": "Returns vesting schedules with computed vested and releasable amounts, progress, status and next release date.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Get Schedules",
                "operationId": "api_v1_get_schedules",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Beneficiary addresses. Can be sent in raw or user-friendly form.",
                        "name": "beneficiary",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "enum": [
                                "pending",
                                "active",
                                "completed",
                                "revoked"
                            ],
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Filter by schedule status.",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "maximum": 1000,
                        "minimum": 1,
                        "type": "integer",
                        "default": 100,
                        "description": "Limit number of rows. Use with *offset* to batch read.",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 0,
                        "type": "integer",
                        "default": 0,
                        "description": "Skip first N rows. Use with *limit* to batch read.",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SchedulesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "description": "Get dashboard aggregates: total vested, released and releasable amounts and schedule counts by status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get Vesting Stats",
                "operationId": "api_v1_get_stats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/VestingStats"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/VestingError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "BeneficiariesResponse": {
            "type": "object",
            "properties": {
                "beneficiaries": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "BeneficiaryResponse": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                },
                "index": {
                    "type": "integer"
                }
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                },
                "cliff": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                },
                "gross_amount": {
                    "type": "string",
                    "example": "1000000000"
                },
                "revocable": {
                    "type": "boolean"
                },
                "sent_value": {
                    "type": "string",
                    "example": "1000000000"
                },
                "start_time": {
                    "type": "integer"
                }
            }
        },
        "CreateScheduleResponse": {
            "type": "object",
            "properties": {
                "event": {
                    "$ref": "#/definitions/ScheduleCreatedEvent"
                },
                "schedule": {
                    "$ref": "#/definitions/ScheduleRow"
                }
            }
        },
        "EventRecord": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "beneficiary": {
                    "type": "string"
                },
                "cliff": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "integer"
                },
                "type": {
                    "type": "string"
                },
                "utime": {
                    "type": "integer"
                }
            }
        },
        "EventsResponse": {
            "type": "object",
            "properties": {
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/EventRecord"
                    }
                }
            }
        },
        "FeePercentageUpdatedEvent": {
            "type": "object",
            "properties": {
                "fee_percentage": {
                    "type": "integer"
                }
            }
        },
        "FeeRecipientUpdatedEvent": {
            "type": "object",
            "properties": {
                "fee_recipient": {
                    "type": "string"
                }
            }
        },
        "ReleaseResponse": {
            "type": "object",
            "properties": {
                "event": {
                    "$ref": "#/definitions/TokensReleasedEvent"
                },
                "schedule": {
                    "$ref": "#/definitions/ScheduleRow"
                }
            }
        },
        "RevokeResponse": {
            "type": "object",
            "properties": {
                "event": {
                    "$ref": "#/definitions/ScheduleRevokedEvent"
                },
                "schedule": {
                    "$ref": "#/definitions/ScheduleRow"
                }
            }
        },
        "RevokeScheduleRequest": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                }
            }
        },
        "ScheduleCreatedEvent": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                },
                "cliff": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "integer"
                },
                "total_amount": {
                    "type": "string",
                    "example": "1000000000"
                }
            }
        },
        "ScheduleRevokedEvent": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                }
            }
        },
        "ScheduleRow": {
            "type": "object",
            "properties": {
                "beneficiary": {
                    "type": "string"
                },
                "next_release_date": {
                    "type": "integer",
                    "example": null,
                    "nullable": true
                },
                "progress": {
                    "type": "integer"
                },
                "releasable_amount": {
                    "type": "string",
                    "example": "1000000000"
                },
                "schedule": {
                    "$ref": "#/definitions/VestingSchedule"
                },
                "status": {
                    "type": "string"
                },
                "vested_amount": {
                    "type": "string",
                    "example": "1000000000"
                }
            }
        },
        "SchedulesResponse": {
            "type": "object",
            "properties": {
                "schedules": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ScheduleRow"
                    }
                }
            }
        },
        "TokensReleasedEvent": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "1000000000"
                },
                "beneficiary": {
                    "type": "string"
                }
            }
        },
        "UpdateFeePercentageRequest": {
            "type": "object",
            "properties": {
                "fee_percentage": {
                    "type": "integer",
                    "example": 100
                }
            }
        },
        "UpdateFeePercentageResponse": {
            "type": "object",
            "properties": {
                "event": {
                    "$ref": "#/definitions/FeePercentageUpdatedEvent"
                }
            }
        },
        "UpdateFeeRecipientRequest": {
            "type": "object",
            "properties": {
                "fee_recipient": {
                    "type": "string"
                }
            }
        },
        "UpdateFeeRecipientResponse": {
            "type": "object",
            "properties": {
                "event": {
                    "$ref": "#/definitions/FeeRecipientUpdatedEvent"
                }
            }
        },
        "VestingError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                }
            }
        },
        "VestingInfo": {
            "type": "object",
            "properties": {
                "beneficiary_count": {
                    "type": "integer"
                },
                "fee_recipient": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "setup_fee_percentage": {
                    "type": "integer"
                },
                "treasury_balance": {
                    "type": "string",
                    "example": "1000000000"
                }
            }
        },
        "VestingSchedule": {
            "type": "object",
            "properties": {
                "cliff": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                },
                "initialized": {
                    "type": "boolean"
                },
                "released": {
                    "type": "string",
                    "example": "0"
                },
                "revocable": {
                    "type": "boolean"
                },
                "revoked": {
                    "type": "boolean"
                },
                "revoked_at": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "integer"
                },
                "total_amount": {
                    "type": "string",
                    "example": "1000000000"
                }
            }
        },
        "VestingStats": {
            "type": "object",
            "properties": {
                "active_count": {
                    "type": "integer"
                },
                "beneficiary_count": {
                    "type": "integer"
                },
                "completed_count": {
                    "type": "integer"
                },
                "next_release_date": {
                    "type": "integer",
                    "example": null,
                    "nullable": true
                },
                "pending_count": {
                    "type": "integer"
                },
                "revoked_count": {
                    "type": "integer"
                },
                "total_releasable": {
                    "type": "string",
                    "example": "1000000000"
                },
                "total_released": {
                    "type": "string",
                    "example": "1000000000"
                },
                "total_vested": {
                    "type": "string",
                    "example": "1000000000"
                }
            }
        }
    },
    "securityDefinitions": {
        "CallerAddressHeader": {
            "type": "apiKey",
            "name": "X-Caller-Address",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TON Vesting Service",
	Description:      "Token vesting ledger with linear release curves, cliffs, setup fees and owner-gated revocation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
