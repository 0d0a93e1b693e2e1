// Package handlers provides HTTP request handlers for the menumap API.
//
// Handlers are organized by domain:
//
//   - restaurants.go: restaurant listing, lookup by id and menus
//   - health.go: health and readiness checks
//   - openapi.go: OpenAPI specification and Swagger UI
//
// Lookups that miss are answered with a 404 Error body through
// response.ErrorFromType. Handlers receive their dependencies through the
// Handlers struct.
package handlers

//go:generate gomarkdoc --output README.md .
