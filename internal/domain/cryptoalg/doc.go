// Package cryptoalg defines the raw RSA key material exchanged between the key decoder and the signature engine,
// together with the contracts for decoding, storing and using that material to sign and verify gateway messages.
package cryptoalg
