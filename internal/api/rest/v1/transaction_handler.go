package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// TransactionHandler defines the interface for reading the transaction journal
type TransactionHandler interface {
	ListTransactions(ctx *gin.Context)
	GetTransactionByID(ctx *gin.Context)
}

type transactionHandler struct {
	transactionMetadataService payment.TransactionMetadataService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionMetadataService payment.TransactionMetadataService) TransactionHandler {
	return &transactionHandler{
		transactionMetadataService: transactionMetadataService,
	}
}

// ListTransactions handles the GET request to list journal entries with optional query parameters
// @Summary List journal entries
// @Description Fetch journal entries filtered by order number, direction, finalization code and creation date, with pagination and sorting options.
// @Tags Transaction
// @Produce json
// @Param orderNumber query string false "Order number"
// @Param direction query string false "request or response"
// @Param finalizationCode query string false "Two-digit finalization code"
// @Param since query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} TransactionRecordResponse
// @Failure 400 {object} ErrorResponse
// @Router /transactions [get]
func (handler *transactionHandler) ListTransactions(ctx *gin.Context) {
	query := payment.NewTransactionQuery()

	if orderNumber := ctx.Query("orderNumber"); len(orderNumber) > 0 {
		query.OrderNumber = orderNumber
	}

	if direction := ctx.Query("direction"); len(direction) > 0 {
		query.Direction = payment.Direction(direction)
	}

	if code := ctx.Query("finalizationCode"); len(code) > 0 {
		query.FinalizationCode = code
	}

	if since := ctx.Query("since"); len(since) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, since)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid since: %v", err)})
			return
		}
		query.Since = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if value := ctx.Query(name); len(value) > 0 {
			n, err := strconv.Atoi(value)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, value)})
				return
			}
			*target = n
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	records, err := handler.transactionMetadataService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var listResponse = []TransactionRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, newTransactionRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetTransactionByID handles the GET request to retrieve a journal entry by ID
// @Summary Retrieve a journal entry by ID
// @Tags Transaction
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} TransactionRecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (handler *transactionHandler) GetTransactionByID(ctx *gin.Context) {
	recordID := ctx.Param("id")

	record, err := handler.transactionMetadataService.GetByID(ctx, recordID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTransactionRecordResponse(record))
}
