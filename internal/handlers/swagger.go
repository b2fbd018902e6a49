package handlers

// @title List Service API
// @version 1.0
// @description Returns the head or tail of a posted list of strings.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name list
// @tag.description Head and tail list operations
