package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	reqdto "lane-booking/internal/handler/dto/request"
	"lane-booking/internal/handler/httperr"
	"lane-booking/internal/infra/payment"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const WebhookSecretHeader = "X-Webhook-Secret"

var errBadWebhookSecret = errs.New("webhook secret mismatch")

type PaymentHandler struct {
	cmds   commands.LifecycleCommands
	secret string
}

func NewPaymentHandler(cmds commands.LifecycleCommands, secret string) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, secret: secret}
}

// @Summary Payment notification
// @Description Called by the payment provider; an approved payment confirms every reservation of the booking as PAID
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Param request body reqdto.PaymentNotification true "Notification"
// @Success 200 {object} map[string]int
// @Failure 401 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	got := c.GetHeader(WebhookSecretHeader)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadWebhookSecret, "Invalid webhook secret", nil)
		return
	}

	var req reqdto.PaymentNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	ids, err := payment.ParseExternalReference(req.ExternalReference)
	if err != nil {
		badRequest(c, err, "Invalid external reference")
		return
	}

	updated, err := h.cmds.ApplyPaymentNotification(c.Request.Context(), shared.PaymentSystem(), ids, req.Approved())
	if err != nil {
		respondError(c, err)
		return
	}
	slog.Info("payment notification applied",
		"status", req.Status,
		"reservations", len(ids),
		"updated", len(updated))
	c.JSON(http.StatusOK, gin.H{"updated": len(updated)})
}
