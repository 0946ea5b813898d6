package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>gracechapel — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "gracechapel", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": { "summary": "Demo email login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"}}}}}}, "responses": { "200": { "description": "tokens returned" } } }
    },
    "/api/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/api/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/auth/me": {
      "get": { "summary": "Authenticated identity", "responses": { "200": { "description": "user" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/sermons": {
      "get": { "summary": "List sermons", "responses": { "200": { "description": "sermon list" } } }
    },
    "/api/sermons/{id}": {
      "get": { "summary": "Get one sermon", "responses": { "200": { "description": "sermon" }, "404": { "description": "not found" } } }
    },
    "/api/events": {
      "get": { "summary": "List upcoming events, soonest first", "responses": { "200": { "description": "event list" } } }
    },
    "/api/contact": {
      "post": { "summary": "Send a contact message", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"}}}}}}, "responses": { "201": { "description": "message received" } } }
    },
    "/api/giving/donate": {
      "post": { "summary": "Process a donation through the payment gateway", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"amount":{"type":"number"},"purpose":{"type":"string"}}}}}}, "responses": { "201": { "description": "donation recorded with PAY- reference" }, "502": { "description": "payment failed" } } }
    },
    "/api/admin/sermons": { "post": { "summary": "Add a sermon (admin)", "responses": { "201": { "description": "created" } } } },
    "/api/admin/events": { "post": { "summary": "Add an event (admin)", "responses": { "201": { "description": "created" } } } },
    "/api/admin/messages": { "get": { "summary": "List contact messages, newest first (admin)", "responses": { "200": { "description": "message list" } } } },
    "/api/admin/messages/{id}/read": { "put": { "summary": "Mark a message read (admin)", "responses": { "200": { "description": "marked read" } } } },
    "/api/admin/giving/donations": { "get": { "summary": "List donations, newest first (admin)", "responses": { "200": { "description": "donation list" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
