package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"golang.org/x/crypto/cryptobyte"
)

const (
	derTagInteger  = 0x02
	derTagSequence = 0x30

	// maxLengthOctets bounds the long-form length field; larger values cannot describe an RSA key.
	maxLengthOctets = 4
)

// readIntegerSize consumes an INTEGER tag and its length field and returns the content length.
// The content itself is left in s.
func readIntegerSize(s *cryptobyte.String) (int, error) {
	var tag uint8
	if !s.ReadUint8(&tag) {
		return 0, fmt.Errorf("%w: unexpected end of data before INTEGER tag", cryptoalg.ErrMalformedKey)
	}
	if tag != derTagInteger {
		return 0, fmt.Errorf("%w: expected INTEGER tag 0x%02x, got 0x%02x", cryptoalg.ErrMalformedKey, derTagInteger, tag)
	}
	return readLength(s)
}

// readLength decodes a DER length field: a single byte below 0x80, or 0x80|n followed by n big-endian length bytes.
func readLength(s *cryptobyte.String) (int, error) {
	var first uint8
	if !s.ReadUint8(&first) {
		return 0, fmt.Errorf("%w: unexpected end of data before length", cryptoalg.ErrMalformedKey)
	}
	if first < 0x80 {
		return int(first), nil
	}

	count := int(first & 0x7f)
	if count == 0 || count > maxLengthOctets {
		return 0, fmt.Errorf("%w: unsupported length form 0x%02x", cryptoalg.ErrMalformedKey, first)
	}

	var octets []byte
	if !s.ReadBytes(&octets, count) {
		return 0, fmt.Errorf("%w: truncated %d-byte length", cryptoalg.ErrMalformedKey, count)
	}

	length := 0
	for _, b := range octets {
		length = length<<8 | int(b)
	}
	return length, nil
}

// readInteger reads a whole INTEGER and returns its content with a single leading
// zero sign byte removed. The returned slice aliases s.
func readInteger(s *cryptobyte.String) ([]byte, error) {
	size, err := readIntegerSize(s)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: empty INTEGER", cryptoalg.ErrMalformedKey)
	}

	var content []byte
	if !s.ReadBytes(&content, size) {
		return nil, fmt.Errorf("%w: INTEGER declares %d bytes but only %d remain", cryptoalg.ErrMalformedKey, size, len(*s))
	}

	if len(content) > 1 && content[0] == 0x00 {
		content = content[1:]
	}
	return content, nil
}
