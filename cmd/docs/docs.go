// Package docs holds the OpenAPI document served under /swagger. It mirrors
// the swag annotations on the handlers in internal/handlers and must be kept
// in step with them when routes change.
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
        "/balances": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settlement"
                ],
                "summary": "Get the market's holdings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BalancesResponse"
                        }
                    }
                }
            }
        },
        "/collections": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Registers an item contract. When currencies and amounts are given the default prices are set in the same transaction (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "collections"
                ],
                "summary": "Register a collection",
                "parameters": [
                    {
                        "description": "Collection contract",
                        "name": "collection",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddCollectionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CollectionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid collection or prices",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Caller lacks NFT_ADMIN",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Collection already registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists registered collections in registration order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "collections"
                ],
                "summary": "List collections",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CollectionResponse"
                            }
                        }
                    }
                }
            }
        },
        "/collections/{address}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "collections"
                ],
                "summary": "Get a collection",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CollectionResponse"
                        }
                    },
                    "404": {
                        "description": "Collection not registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes a collection; refused while any of its tokens are listed (NFT_ADMIN)",
                "tags": [
                    "collections"
                ],
                "summary": "Unregister a collection",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Collection not registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Collection has listed tokens",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/listings": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adds tokens to the market; requires at least one default price (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "listings"
                ],
                "summary": "List tokens for sale",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Token ids",
                        "name": "tokens",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ListingBatchRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "422": {
                        "description": "No default price",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "listings"
                ],
                "summary": "Page through listed tokens",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "default": 50,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListListingsResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/listings/remove": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes tokens from the market; every token must be listed (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "listings"
                ],
                "summary": "Delist tokens",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Token ids",
                        "name": "tokens",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ListingBatchRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "422": {
                        "description": "A token is not listed",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/prices/default": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Overwrites the collection-wide price in each given currency (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "prices"
                ],
                "summary": "Set default prices",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Parallel currency and amount arrays",
                        "name": "prices",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetDefaultPricesRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Empty batch, length mismatch, zero amount or unknown currency",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/prices/override": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sets an override price in one currency for each token (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "prices"
                ],
                "summary": "Set per-token prices",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Currency, token ids and amounts",
                        "name": "prices",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetOverridePricesRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid batch",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/prices/override/clear": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes the override price in one currency; every token must have one (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "prices"
                ],
                "summary": "Clear per-token prices",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Currency and token ids",
                        "name": "prices",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ClearOverridePricesRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "422": {
                        "description": "A token has no override",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/purchase-keys": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Buyers of these tokens must also pay amount of (asset, subId) (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "purchase-keys"
                ],
                "summary": "Gate tokens behind a purchase key",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Token ids and key",
                        "name": "key",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetPurchaseKeyRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid asset or zero amount",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/purchase-keys/clear": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Every token must currently have a key (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "purchase-keys"
                ],
                "summary": "Remove purchase keys",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Token ids",
                        "name": "tokens",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ClearPurchaseKeyRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "422": {
                        "description": "A token has no purchase key",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/tokens/{tokenID}/listed": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "listings"
                ],
                "summary": "Check whether a token is listed",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Token id",
                        "name": "tokenID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.IsListedResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/tokens/{tokenID}/prices": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns parallel arrays over registered currencies; unpriced entries are \"0\"",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "prices"
                ],
                "summary": "Resolve a token's price in every currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Token id",
                        "name": "tokenID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GetAllPricesResponse"
                        }
                    },
                    "404": {
                        "description": "Collection not registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/tokens/{tokenID}/prices/{currency}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the override price, else the default price, else an unset price",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "prices"
                ],
                "summary": "Resolve a token's price in one currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Token id",
                        "name": "tokenID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Currency contract address",
                        "name": "currency",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PriceResponse"
                        }
                    }
                }
            }
        },
        "/collections/{address}/tokens/{tokenID}/purchase-key": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "An ungated token returns the zero asset and amount \"0\"",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "purchase-keys"
                ],
                "summary": "Get a token's purchase key",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Collection contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Token id",
                        "name": "tokenID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseKeyResponse"
                        }
                    }
                }
            }
        },
        "/currencies": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Registers a fungible asset contract as a payment currency (NFT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "currencies"
                ],
                "summary": "Register an accepted currency",
                "parameters": [
                    {
                        "description": "Currency contract",
                        "name": "currency",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddCurrencyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid currency",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Caller lacks NFT_ADMIN",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Currency already registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists registered currencies in registration order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "currencies"
                ],
                "summary": "List accepted currencies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CurrencyResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list currencies",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/currencies/{address}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes a currency; refused while the market still holds any of it (NFT_ADMIN)",
                "tags": [
                    "currencies"
                ],
                "summary": "Unregister a currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency contract address",
                        "name": "address",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Currency not registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Balance outstanding",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/events/stream": {
            "get": {
                "description": "Upgrades to a websocket that receives every listing change and purchase as JSON envelopes",
                "tags": [
                    "events"
                ],
                "summary": "Stream market events",
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports that the server is up",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/purchases": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Pays the resolved price of every token (and any purchase keys) from the caller and delivers the tokens. The whole batch settles or nothing does.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settlement"
                ],
                "summary": "Buy listed tokens",
                "parameters": [
                    {
                        "description": "Collection, token ids and currency",
                        "name": "purchase",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BuyTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.PurchaseResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid batch or unknown currency",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Collection not registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Reentrant call",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Token not listed, no price or purchase key required",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Asset ledger rejected a transfer",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/roles/grant": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Grants role to account; granting a held role is a no-op (DEFAULT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Grant a role",
                "parameters": [
                    {
                        "description": "Role and account",
                        "name": "grant",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RoleChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Unknown role or zero account",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Caller lacks DEFAULT_ADMIN",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/roles/revoke": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revokes role from account; revoking an absent grant is a no-op (DEFAULT_ADMIN)",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Revoke a role",
                "parameters": [
                    {
                        "description": "Role and account",
                        "name": "grant",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RoleChangeRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Caller lacks DEFAULT_ADMIN",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/roles/{role}/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "List a role's members",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "DEFAULT_ADMIN",
                            "NFT_ADMIN",
                            "WITHDRAW"
                        ],
                        "description": "Role",
                        "name": "role",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.RoleGrantResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Unknown role",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/withdrawals": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Transfers every non-zero currency and semi-fungible balance to the caller (WITHDRAW)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settlement"
                ],
                "summary": "Withdraw the market's holdings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WithdrawalResponse"
                        }
                    },
                    "403": {
                        "description": "Caller lacks WITHDRAW",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "No balance available",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Asset ledger rejected a transfer",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AddCollectionRequest": {
            "type": "object",
            "required": [
                "standard"
            ],
            "properties": {
                "address": {
                    "type": "string"
                },
                "amounts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currencies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "holder": {
                    "type": "string"
                },
                "standard": {
                    "type": "string",
                    "enum": [
                        "erc721",
                        "erc1155"
                    ]
                }
            }
        },
        "dto.AddCurrencyRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string",
                    "example": "0x9a1f5cbd4e0b3e1e1c2b6a37d0b1f7e6a9c4d211"
                },
                "symbol": {
                    "type": "string",
                    "maxLength": 16
                }
            }
        },
        "dto.AmountEntry": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "asset": {
                    "type": "string"
                },
                "subId": {
                    "type": "integer"
                }
            }
        },
        "dto.BalancesResponse": {
            "type": "object",
            "properties": {
                "currencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AmountEntry"
                    }
                },
                "semiFungible": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AmountEntry"
                    }
                }
            }
        },
        "dto.BuyTokenRequest": {
            "type": "object",
            "properties": {
                "collection": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.ClearOverridePricesRequest": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.ClearPurchaseKeyRequest": {
            "type": "object",
            "properties": {
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.CollectionResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "holder": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "standard": {
                    "type": "string"
                }
            }
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "lastUpdatedAt": {
                    "type": "string"
                },
                "lastUpdatedBy": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                }
            }
        },
        "dto.GetAllPricesResponse": {
            "type": "object",
            "properties": {
                "amounts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currencies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.IsListedResponse": {
            "type": "object",
            "properties": {
                "collection": {
                    "type": "string"
                },
                "listed": {
                    "type": "boolean"
                },
                "tokenId": {
                    "type": "integer"
                }
            }
        },
        "dto.ListListingsResponse": {
            "type": "object",
            "properties": {
                "collection": {
                    "type": "string"
                },
                "nextToken": {
                    "type": "string"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.ListingBatchRequest": {
            "type": "object",
            "properties": {
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.PriceResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "set": {
                    "type": "boolean"
                }
            }
        },
        "dto.PurchaseKeyResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "asset": {
                    "type": "string"
                },
                "subId": {
                    "type": "integer"
                }
            }
        },
        "dto.PurchaseResponse": {
            "type": "object",
            "properties": {
                "buyer": {
                    "type": "string"
                },
                "collection": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "keysPaid": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AmountEntry"
                    }
                },
                "purchasedAt": {
                    "type": "string"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "dto.RoleChangeRequest": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "account": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "DEFAULT_ADMIN",
                        "NFT_ADMIN",
                        "WITHDRAW"
                    ]
                }
            }
        },
        "dto.RoleGrantResponse": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string"
                },
                "grantedAt": {
                    "type": "string"
                },
                "grantedBy": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "dto.SetDefaultPricesRequest": {
            "type": "object",
            "properties": {
                "amounts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currencies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.SetOverridePricesRequest": {
            "type": "object",
            "properties": {
                "amounts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currency": {
                    "type": "string"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.SetPurchaseKeyRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "asset": {
                    "type": "string"
                },
                "subId": {
                    "type": "integer"
                },
                "tokenIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "dto.WithdrawalResponse": {
            "type": "object",
            "properties": {
                "currencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AmountEntry"
                    }
                },
                "recipient": {
                    "type": "string"
                },
                "semiFungible": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AmountEntry"
                    }
                },
                "withdrawnAt": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "tokenId": {
                    "type": "integer"
                }
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "XaveMarket API",
	Description:      "Marketplace settling item purchases against on-chain asset ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
