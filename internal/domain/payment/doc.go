// Package payment models the BORICA store-and-forward authorization protocol (BOReq/BOResp, version 1.1):
// the request and response messages, their fixed field widths, the finalization code catalog
// and the transaction journal.
package payment
