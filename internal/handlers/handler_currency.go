package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, gate domain.Gate, currencyService portssvc.CurrencySvcFacade, historyService portssvc.ExchangeRateHistorySvcFacade) {
	h := newCurrencyHandler(currencyService)
	hh := newExchangeRateHandler(historyService)

	canRead := middleware.RequireAny(gate, domain.PermCurrenciesRead)
	canWrite := middleware.RequireAny(gate, domain.PermCurrenciesWrite)
	canDelete := middleware.RequireAll(gate, domain.PermCurrenciesWrite, domain.PermCurrenciesDelete)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", canRead, h.listCurrencies)
		currencies.POST("", canWrite, h.createCurrency)
		currencies.GET("/convert", canRead, h.convertCurrency)
		currencies.GET("/history", canRead, hh.listHistory)
		currencies.POST("/history", canWrite, hh.recordRate)
		currencies.GET("/:id", canRead, h.getCurrency)
		currencies.PUT("/:id", canWrite, h.updateCurrency)
		currencies.DELETE("/:id", canDelete, h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists currencies, base currency first then by code. count is the filtered size, total the unfiltered size.
// @Tags currencies
// @Produce json
// @Param search query string false "Case-insensitive substring of code or name"
// @Param isActive query bool false "Only active or inactive currencies"
// @Success 200 {object} response.Envelope{data=[]dto.CurrencyResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err, "list currencies")
		return
	}

	currencies, total, err := h.currencyService.ListCurrencies(c.Request.Context(), params.ToFilter())
	if err != nil {
		writeServiceError(c, logger, err, "List currencies")
		return
	}

	response.List(c, dto.ToListCurrencyResponse(currencies), len(currencies), total)
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Creates a currency. A currency created as base demotes the previous base and gets rate 1.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} response.Envelope{data=dto.CurrencyResponse}
// @Failure 400 {object} response.Envelope "Invalid input or duplicate code"
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "create currency")
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received request to create currency", slog.String("currency_code", req.Code))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Create currency")
		return
	}

	response.Success(c, http.StatusCreated, dto.ToCurrencyResponse(created))
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 200 {object} response.Envelope{data=dto.CurrencyResponse}
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_id", c.Param("id")))

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err, "Get currency")
		return
	}

	response.Success(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Partially updates a currency. Setting isBaseCurrency demotes the previous base; a base currency always has rate 1.
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path string true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} response.Envelope{data=dto.CurrencyResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_id", c.Param("id")))

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, logger, err, "update currency")
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Update currency")
		return
	}

	response.Success(c, http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deletes a currency. The base currency cannot be deleted.
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Base currency"
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_id", c.Param("id")))

	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, logger, err, "Delete currency")
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Currency deleted successfully")
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Tags currencies
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param amount query string true "Amount to convert"
// @Success 200 {object} response.Envelope{data=domain.Conversion}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /currencies/convert [get]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertCurrencyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		writeBindError(c, logger, err, "convert currency")
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "amount must be numeric")
		return
	}

	conversion, err := h.currencyService.ConvertAmount(c.Request.Context(), params.From, params.To, amount)
	if err != nil {
		writeServiceError(c, logger, err, "Convert currency")
		return
	}

	response.Success(c, http.StatusOK, conversion)
}
