package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy to an HTTP status and a client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, payment.ErrVerificationFailed):
		return http.StatusUnauthorized, payment.ErrVerificationFailed.Error()
	case errors.Is(err, validators.ErrValidation),
		errors.Is(err, payment.ErrFormat),
		errors.Is(err, payment.ErrFraming):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, payment.ErrTransactionNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "unable to process the request"
	}
}

func abortWithError(ctx *gin.Context, err error) {
	status, message := statusFor(err)
	_ = ctx.Error(err)
	ctx.JSON(status, ErrorResponse{Message: message})
}
