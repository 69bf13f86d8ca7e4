// Package models maps the transaction journal to its gorm table.
// Models convert to and from payment domain types with ToDomain and FromDomain.
package models
