// Package docs registers the OpenAPI document served at /swagger.
//
// Regenerate the full document from the handler annotations with
// `swag init -g cmd/api/main.go`.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/v1/laptops": {"get": {"tags": ["Laptops"], "summary": "Browse and filter laptops"}},
        "/api/v1/laptops/autocomplete": {"get": {"tags": ["Laptops"], "summary": "Search suggestions"}},
        "/api/v1/laptops/compare": {"get": {"tags": ["Laptops"], "summary": "Compare laptops side by side"}},
        "/api/v1/laptops/{slug}": {"get": {"tags": ["Laptops"], "summary": "Laptop detail"}},
        "/api/v1/laptops/{slug}/reviews": {
            "get": {"tags": ["Reviews"], "summary": "List reviews of a laptop"},
            "post": {"tags": ["Reviews"], "summary": "Rate a laptop", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/laptops/{slug}/prices": {
            "get": {"tags": ["Pricing"], "summary": "Price history of a laptop"},
            "post": {"tags": ["Pricing"], "summary": "Record a price", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/laptops/{slug}/prices/trend": {"get": {"tags": ["Pricing"], "summary": "Price trend of a laptop"}},
        "/api/v1/laptops/{slug}/seo": {"get": {"tags": ["SEO"], "summary": "SEO metadata of a laptop"}},
        "/api/v1/brands": {"get": {"tags": ["Laptops"], "summary": "List brands"}},
        "/api/v1/brands/{slug}": {"get": {"tags": ["Laptops"], "summary": "Brand page"}},
        "/api/v1/categories": {"get": {"tags": ["Laptops"], "summary": "List categories"}},
        "/api/v1/home": {"get": {"tags": ["Laptops"], "summary": "Home page data"}},
        "/api/v1/articles": {
            "get": {"tags": ["Articles"], "summary": "List published articles"},
            "post": {"tags": ["Articles"], "summary": "Create an article", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/articles/{slug}": {"get": {"tags": ["Articles"], "summary": "Article detail"}},
        "/api/v1/me/reviews": {"get": {"tags": ["Reviews"], "summary": "List the caller's reviews", "security": [{"BearerAuth": []}]}},
        "/api/v1/me/favorites": {"get": {"tags": ["Account"], "summary": "List favorites", "security": [{"BearerAuth": []}]}},
        "/api/v1/me/favorites/{laptop_id}": {"post": {"tags": ["Account"], "summary": "Toggle a favorite", "security": [{"BearerAuth": []}]}},
        "/api/v1/me/dashboard": {"get": {"tags": ["Account"], "summary": "Account dashboard", "security": [{"BearerAuth": []}]}},
        "/api/v1/me/profile": {
            "get": {"tags": ["Account"], "summary": "Get the caller's profile", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Account"], "summary": "Update the caller's profile", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/me/alerts": {
            "get": {"tags": ["Pricing"], "summary": "List price alerts", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Pricing"], "summary": "Create a price alert", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/me/alerts/{id}": {"delete": {"tags": ["Pricing"], "summary": "Delete a price alert", "security": [{"BearerAuth": []}]}},
        "/sitemap.xml": {"get": {"tags": ["SEO"], "summary": "sitemap.xml"}},
        "/robots.txt": {"get": {"tags": ["SEO"], "summary": "robots.txt"}},
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check"}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check"}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "LaptopXplorer API",
	Description:      "Laptop catalog with faceted search, reviews, favorites, price tracking and SEO metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
