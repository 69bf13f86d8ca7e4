// Package protocol implements the fixed-width BOReq/BOResp message layouts and
// the sign, Base64 and percent-encoding chain used to carry them in the eBorica parameter.
package protocol
