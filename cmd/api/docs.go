package main

// @title Sales Insights API
// @version 1.0
// @description Inventory and sales reporting API with full observability (logging, tracing, metrics)

// @contact.name API Support

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product catalog

// @tag.name Sales
// @tag.description Recorded sales

// @tag.name Revenue
// @tag.description Revenue reports

// @tag.name Inventory
// @tag.description Stock levels

// @tag.name Health
// @tag.description Health check endpoints
