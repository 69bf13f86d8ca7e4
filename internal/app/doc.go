// Package app contains the application services that tie the message codec,
// the signature engine, the key store and the transaction journal together.
package app
