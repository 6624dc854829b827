package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler accepts business events from the rental workflows and records them in the ledger.
// Posting is best effort: the response is 200 with the posting result whatever the outcome,
// and only malformed payloads are refused.
type eventHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newEventHandler(ps portssvc.PostingSvcFacade) *eventHandler {
	return &eventHandler{postingService: ps}
}

// registerEventRoutes registers the business event intake routes.
func registerEventRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newEventHandler(postingService)

	events := rg.Group("/events")
	{
		events.POST("/contract-payments", h.recordPayment)
		events.POST("/contracts", h.recordContract)
		events.POST("/salaries", h.recordSalary)
		events.POST("/purchases", h.recordPurchase)
	}
}

// recordPayment godoc
// @Summary Record a received contract payment
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.ContractPaymentEvent true "Payment details"
// @Success 200 {object} dto.PostingResultResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /events/contract-payments [post]
func (h *eventHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ContractPaymentEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received contract payment event", slog.Int64("payment_id", req.PaymentID))

	result := h.postingService.RecordPaymentReceived(c.Request.Context(), req.ToDomain(userID))
	h.respond(c, logger, result)
}

// recordContract godoc
// @Summary Record a newly signed contract
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.ContractCreatedEvent true "Contract details"
// @Success 200 {object} dto.PostingResultResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /events/contracts [post]
func (h *eventHandler) recordContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ContractCreatedEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received contract created event", slog.Int64("contract_id", req.ContractID))

	result := h.postingService.RecordContractCreated(c.Request.Context(), req.ToDomain(userID))
	h.respond(c, logger, result)
}

// recordSalary godoc
// @Summary Record a paid salary
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.SalaryPaidEvent true "Salary details"
// @Success 200 {object} dto.PostingResultResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /events/salaries [post]
func (h *eventHandler) recordSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SalaryPaidEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received salary paid event", slog.Int64("salary_id", req.SalaryID))

	result := h.postingService.RecordSalaryPaid(c.Request.Context(), req.ToDomain(userID))
	h.respond(c, logger, result)
}

// recordPurchase godoc
// @Summary Record a supplier purchase
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.PurchaseEvent true "Purchase details"
// @Success 200 {object} dto.PostingResultResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /events/purchases [post]
func (h *eventHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PurchaseEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Received purchase event", slog.Int64("purchase_id", req.PurchaseID))

	result := h.postingService.RecordPurchase(c.Request.Context(), req.ToDomain(userID))
	h.respond(c, logger, result)
}

func (h *eventHandler) respond(c *gin.Context, logger *slog.Logger, result domain.PostingResult) {
	logger.Debug("Posting finished", slog.String("status", string(result.Status)))
	c.JSON(http.StatusOK, dto.ToPostingResultResponse(result))
}
