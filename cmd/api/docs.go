// Package main PromptHub API
//
// Multi-tenant prompt authoring and testing platform with free and Pro plans.
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 0.1.0
// Contact: PromptHub Support <support@prompthub.dev>
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// Security:
// - bearerAuth: []
//
// SecurityDefinitions:
// bearerAuth:
//   type: apiKey
//   name: Authorization
//   in: header
//   description: Identity provider token in format "Bearer {token}"
//
// swagger:meta
package main
