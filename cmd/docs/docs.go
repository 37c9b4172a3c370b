// Package docs holds the OpenAPI description of the HTTP API. It mirrors the
// swag annotations on the handlers and can be regenerated with
// `swag init -g cmd/ledger_backend/main.go -o cmd/docs`.
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
        "/orgs/{orgID}/accounts": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "default": 20,
                        "description": "Page size",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "default": 0,
                        "description": "Offset",
                        "in": "query",
                        "name": "offset",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListAccountsResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List chart accounts",
                "tags": [
                    "accounts"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account details",
                        "in": "body",
                        "name": "account",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAccountRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "409": {
                        "description": "Account code already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a chart account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/orgs/{orgID}/accounts/{accountID}": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "accountID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AccountResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a chart account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/orgs/{orgID}/accounts/{accountID}/deactivate": {
            "post": {
                "description": "Inactive accounts are rejected by new journals. Posted history is untouched.",
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "accountID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Deactivate a chart account",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/orgs/{orgID}/accounts/{accountID}/ledger-entries": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "accountID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "default": 20,
                        "description": "Page size",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "description": "Cursor from a previous page",
                        "in": "query",
                        "name": "nextToken",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListLedgerEntriesResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List an account's ledger entries, newest first",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/orgs/{orgID}/accounts/{accountID}/reconcile": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account ID",
                        "in": "path",
                        "name": "accountID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReconciliationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Compare an account balance with its ledger entries",
                "tags": [
                    "accounts"
                ]
            }
        },
        "/orgs/{orgID}/journals": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "DRAFT, POSTED or VOID",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    },
                    {
                        "default": 20,
                        "description": "Page size",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    },
                    {
                        "description": "Cursor from a previous page",
                        "in": "query",
                        "name": "nextToken",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListJournalsResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List journals, newest first",
                "tags": [
                    "journals"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Lines must balance and reference active accounts of the org. Nothing is posted.",
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Journal header and lines",
                        "in": "body",
                        "name": "journal",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateJournalRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalResponse"
                        }
                    },
                    "400": {
                        "description": "UNBALANCED, TOO_FEW_LINES, INVALID_ACCOUNT or INVALID_AMOUNT",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "503": {
                        "description": "Numbering or storage unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a DRAFT journal",
                "tags": [
                    "journals"
                ]
            }
        },
        "/orgs/{orgID}/journals/{journalID}": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Journal ID",
                        "in": "path",
                        "name": "journalID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a journal with its lines",
                "tags": [
                    "journals"
                ]
            }
        },
        "/orgs/{orgID}/journals/{journalID}/ledger-entries": {
            "get": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Journal ID",
                        "in": "path",
                        "name": "journalID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/dto.LedgerEntryResponse"
                            },
                            "type": "array"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List the ledger entries of a journal, reversals included",
                "tags": [
                    "journals"
                ]
            }
        },
        "/orgs/{orgID}/journals/{journalID}/post": {
            "post": {
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Journal ID",
                        "in": "path",
                        "name": "journalID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PostJournalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "409": {
                        "description": "Journal is not a DRAFT",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "503": {
                        "description": "Transaction rolled back",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Post a DRAFT journal to the ledger",
                "tags": [
                    "journals"
                ]
            }
        },
        "/orgs/{orgID}/journals/{journalID}/void": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Writes reversal entries and restores the balances the journal changed.",
                "parameters": [
                    {
                        "description": "Organization ID",
                        "in": "path",
                        "name": "orgID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Journal ID",
                        "in": "path",
                        "name": "journalID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Void reason",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.VoidJournalRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.JournalResponse"
                        }
                    },
                    "400": {
                        "description": "MISSING_REASON",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    },
                    "409": {
                        "description": "Journal is not POSTED",
                        "schema": {
                            "$ref": "#/definitions/handlers.errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Void a POSTED journal",
                "tags": [
                    "journals"
                ]
            }
        }
    },
    "definitions": {
        "dto.AccountResponse": {
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "accountType": {
                    "enum": [
                        "ASSET",
                        "LIABILITY",
                        "EQUITY",
                        "REVENUE",
                        "EXPENSE"
                    ],
                    "type": "string"
                },
                "balance": {
                    "example": "500.25",
                    "type": "string"
                },
                "createdAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "lastUpdatedAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "orgID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.CreateAccountRequest": {
            "properties": {
                "accountCode": {
                    "maxLength": 32,
                    "type": "string"
                },
                "accountName": {
                    "maxLength": 255,
                    "type": "string"
                },
                "accountType": {
                    "enum": [
                        "ASSET",
                        "LIABILITY",
                        "EQUITY",
                        "REVENUE",
                        "EXPENSE"
                    ],
                    "type": "string"
                }
            },
            "required": [
                "accountCode",
                "accountName",
                "accountType"
            ],
            "type": "object"
        },
        "dto.CreateJournalLineRequest": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "credit": {
                    "example": "500.25",
                    "type": "string"
                },
                "debit": {
                    "example": "500.25",
                    "type": "string"
                }
            },
            "required": [
                "accountID"
            ],
            "type": "object"
        },
        "dto.CreateJournalRequest": {
            "properties": {
                "description": {
                    "maxLength": 1000,
                    "type": "string"
                },
                "journalDate": {
                    "format": "date-time",
                    "type": "string"
                },
                "lines": {
                    "items": {
                        "$ref": "#/definitions/dto.CreateJournalLineRequest"
                    },
                    "type": "array"
                },
                "sourceType": {
                    "enum": [
                        "MANUAL",
                        "SYSTEM"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.JournalLineResponse": {
            "properties": {
                "accountCode": {
                    "type": "string"
                },
                "accountID": {
                    "type": "string"
                },
                "accountName": {
                    "type": "string"
                },
                "credit": {
                    "example": "500.25",
                    "type": "string"
                },
                "debit": {
                    "example": "500.25",
                    "type": "string"
                },
                "lineNo": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.JournalResponse": {
            "properties": {
                "createdAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "fiscalPeriod": {
                    "type": "integer"
                },
                "fiscalYear": {
                    "type": "integer"
                },
                "isBalanced": {
                    "type": "boolean"
                },
                "journalDate": {
                    "format": "date-time",
                    "type": "string"
                },
                "journalID": {
                    "type": "string"
                },
                "journalNumber": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "lines": {
                    "items": {
                        "$ref": "#/definitions/dto.JournalLineResponse"
                    },
                    "type": "array"
                },
                "orgID": {
                    "type": "string"
                },
                "postedAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "postedBy": {
                    "type": "string"
                },
                "sourceType": {
                    "enum": [
                        "MANUAL",
                        "SYSTEM"
                    ],
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "DRAFT",
                        "POSTED",
                        "VOID"
                    ],
                    "type": "string"
                },
                "totalCredit": {
                    "example": "500.25",
                    "type": "string"
                },
                "totalDebit": {
                    "example": "500.25",
                    "type": "string"
                },
                "voidReason": {
                    "type": "string"
                },
                "voidedAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "voidedBy": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.LedgerEntryResponse": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "credit": {
                    "example": "500.25",
                    "type": "string"
                },
                "debit": {
                    "example": "500.25",
                    "type": "string"
                },
                "entryID": {
                    "type": "string"
                },
                "journalID": {
                    "type": "string"
                },
                "lineNo": {
                    "type": "integer"
                },
                "postedAt": {
                    "format": "date-time",
                    "type": "string"
                },
                "reversesEntryID": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ListAccountsResponse": {
            "properties": {
                "accounts": {
                    "items": {
                        "$ref": "#/definitions/dto.AccountResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.ListJournalsResponse": {
            "properties": {
                "journals": {
                    "items": {
                        "$ref": "#/definitions/dto.JournalResponse"
                    },
                    "type": "array"
                },
                "nextToken": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ListLedgerEntriesResponse": {
            "properties": {
                "entries": {
                    "items": {
                        "$ref": "#/definitions/dto.LedgerEntryResponse"
                    },
                    "type": "array"
                },
                "nextToken": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.PostJournalResponse": {
            "properties": {
                "journal": {
                    "$ref": "#/definitions/dto.JournalResponse"
                },
                "ledgerEntries": {
                    "items": {
                        "$ref": "#/definitions/dto.LedgerEntryResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "dto.ReconciliationResponse": {
            "properties": {
                "accountID": {
                    "type": "string"
                },
                "inBalance": {
                    "type": "boolean"
                },
                "ledgerBalance": {
                    "example": "500.25",
                    "type": "string"
                },
                "storedBalance": {
                    "example": "500.25",
                    "type": "string"
                },
                "totalCredit": {
                    "example": "500.25",
                    "type": "string"
                },
                "totalDebit": {
                    "example": "500.25",
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.VoidJournalRequest": {
            "properties": {
                "reason": {
                    "maxLength": 1000,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "handlers.errorResponse": {
            "properties": {
                "code": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            },
            "type": "object"
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Posting Engine API",
	Description:      "Double-entry journals, posting and voiding over an org-scoped chart of accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
