package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests for the exchange rate history.
type exchangeRateHandler struct {
	historyService portssvc.ExchangeRateHistorySvcFacade
}

func newExchangeRateHandler(svc portssvc.ExchangeRateHistorySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{historyService: svc}
}

// listHistory godoc
// @Summary Query exchange rate history
// @Description Returns at most 100 entries, newest first. A date-only endDate covers the whole day.
// @Tags currencies
// @Produce json
// @Param currencyCode query string false "Currency code (case-insensitive)"
// @Param startDate query string false "Inclusive lower bound, YYYY-MM-DD or RFC 3339"
// @Param endDate query string false "Inclusive upper bound, YYYY-MM-DD or RFC 3339"
// @Success 200 {object} response.Envelope{data=[]dto.ExchangeRateHistoryResponse}
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/history [get]
func (h *exchangeRateHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExchangeRateHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err, "list exchange rate history")
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		logger.Warn("Invalid history query", slog.String("error", err.Error()))
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.historyService.ListHistory(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, logger, err, "List exchange rate history")
		return
	}

	c.JSON(http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		Data:   dto.ToListExchangeRateHistoryResponse(entries),
		Count:  intPtr(len(entries)),
	})
}

// recordRate godoc
// @Summary Record an exchange rate
// @Tags currencies
// @Accept json
// @Produce json
// @Param entry body dto.CreateExchangeRateHistoryRequest true "History entry"
// @Success 201 {object} response.Envelope{data=dto.ExchangeRateHistoryResponse}
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/history [post]
func (h *exchangeRateHandler) recordRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "record exchange rate")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.historyService.RecordRate(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Record exchange rate")
		return
	}

	response.Success(c, http.StatusCreated, dto.ToExchangeRateHistoryResponse(entry))
}

func intPtr(n int) *int { return &n }
