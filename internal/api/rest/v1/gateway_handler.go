package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/borica-gateway/internal/app"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// GatewayHandler defines the interface for handling gateway messages
type GatewayHandler interface {
	BuildRequest(ctx *gin.Context)
	ParseResponse(ctx *gin.Context)
}

type gatewayHandler struct {
	gatewayService payment.GatewayService
	gatewayURL     string
}

// NewGatewayHandler creates a new GatewayHandler. gatewayURL may be empty.
func NewGatewayHandler(gatewayService payment.GatewayService, gatewayURL string) GatewayHandler {
	return &gatewayHandler{
		gatewayService: gatewayService,
		gatewayURL:     gatewayURL,
	}
}

// BuildRequest handles the POST request that produces a signed eBorica request parameter
// @Summary Build a signed gateway request
// @Description Validate, encode and sign a payment request and return the eBorica parameter.
// @Tags Gateway
// @Accept json
// @Produce json
// @Param requestBody body BuildRequest true "Payment request"
// @Success 201 {object} BuildRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /requests [post]
func (handler *gatewayHandler) BuildRequest(ctx *gin.Context) {
	var request BuildRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	eBorica, err := handler.gatewayService.BuildRequestParameter(ctx, request.ToDomain())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	response := BuildRequestResponse{EBorica: eBorica}
	if handler.gatewayURL != "" {
		redirectURL, err := app.RedirectURL(handler.gatewayURL, eBorica)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		response.RedirectURL = redirectURL
	}

	ctx.JSON(http.StatusCreated, response)
}

// ParseResponse handles the gateway callback carrying the eBorica response parameter
// @Summary Verify and decode a gateway response
// @Description Verify the gateway signature of the eBorica parameter and decode the response it carries.
// @Tags Gateway
// @Accept x-www-form-urlencoded
// @Produce json
// @Param eBorica query string false "eBorica parameter (GET)"
// @Param eBorica formData string false "eBorica parameter (POST)"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /responses [get]
// @Router /responses [post]
func (handler *gatewayHandler) ParseResponse(ctx *gin.Context) {
	eBorica := ctx.Query("eBorica")
	if eBorica == "" {
		eBorica = ctx.PostForm("eBorica")
	}
	if eBorica == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing eBorica parameter"})
		return
	}

	response, err := handler.gatewayService.ParseResponse(ctx, eBorica)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPaymentResponse(response))
}
