package testutil

import (
	"net/url"
	"strings"
)

// CreateEBoricaForm returns an application/x-www-form-urlencoded body carrying eBorica,
// as posted back by the gateway. The value is encoded once more by the form encoding.
func CreateEBoricaForm(eBorica string) *strings.Reader {
	form := url.Values{}
	form.Set("eBorica", eBorica)
	return strings.NewReader(form.Encode())
}
