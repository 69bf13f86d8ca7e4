package payment

import "errors"

// ErrFraming is returned when a transport payload cannot be unframed into message and signature.
var ErrFraming = errors.New("framing error")

// ErrFormat is returned when a message does not match the fixed positional layout.
var ErrFormat = errors.New("format error")

// ErrVerificationFailed is returned when a response signature does not verify.
// It deliberately carries no further detail.
var ErrVerificationFailed = errors.New("signature verification failed")

// ErrTransactionNotFound is returned by the journal when no entry has the requested ID.
var ErrTransactionNotFound = errors.New("transaction not found")
