// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to keep a journal of the requests sent to and
// the responses received from the payment gateway.
package persistence
