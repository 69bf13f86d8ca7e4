package validators

import (
	"github.com/go-playground/validator/v10"
)

// SupportedRSAKeySizes lists the RSA modulus sizes, in bits, that key generation and key decoding accept.
var SupportedRSAKeySizes = []int{512, 1024, 2048, 3072, 4096}

// IsSupportedRSAKeySize reports whether bits is one of SupportedRSAKeySizes.
func IsSupportedRSAKeySize(bits int) bool {
	for _, size := range SupportedRSAKeySizes {
		if size == bits {
			return true
		}
	}
	return false
}

// RSAKeySizeValidation validates an RSA key size field ("rsakeysize" tag).
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	return IsSupportedRSAKeySize(int(fl.Field().Int()))
}
