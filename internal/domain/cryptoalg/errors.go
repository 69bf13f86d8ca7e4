package cryptoalg

import "errors"

// ErrMalformedKey is returned when key bytes do not match the expected ASN.1 structure.
// It points at a configuration problem and is never transient.
var ErrMalformedKey = errors.New("malformed key")

// ErrSigning is returned when a signature cannot be produced from otherwise well-formed key material.
var ErrSigning = errors.New("signing failed")
