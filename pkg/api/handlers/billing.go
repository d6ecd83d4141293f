package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/pkg/account"
	apierrors "github.com/prompthub/prompthub/pkg/api/errors"
	"github.com/prompthub/prompthub/pkg/billing"
	"github.com/prompthub/prompthub/pkg/models"
)

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *billing.Service
	accountService *account.Service
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service, accountService *account.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		accountService: accountService,
	}
}

// CreateCheckout handles creating a checkout session
// @Summary Create Stripe checkout session
// @Description Create a Stripe checkout session to upgrade the account to the Pro plan
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CheckoutResponse "Checkout session created"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Already subscribed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	session, err := h.billingService.CreateCheckoutSession(c.Request().Context(), acc.ID)
	if err != nil {
		if errors.Is(err, billing.ErrAlreadySubscribed) {
			return apierrors.ConflictError(c, "Account is already subscribed to the Pro plan")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// HandleWebhook handles Stripe webhook events
// @Summary Handle Stripe webhook
// @Description Verify and apply Stripe subscription lifecycle events. Events that match no account are acknowledged and dropped.
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse "Event processed"
// @Failure 400 {object} models.ErrorResponse "Invalid signature"
// @Failure 500 {object} models.ErrorResponse "Persistence failure, Stripe will redeliver"
// @Router /webhooks/stripe [post]
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	// Signature verification needs the raw bytes, untouched by any binder.
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apierrors.BadRequestError(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.billingService.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		if errors.Is(err, billing.ErrInvalidSignature) {
			return apierrors.BadRequestError(c, "Webhook signature verification failed")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Webhook processed",
	})
}

// GetPricing handles retrieving pricing information
// @Summary Get pricing tiers
// @Description Return pricing and limits for all plan tiers. Public endpoint.
// @Tags Billing
// @Produce json
// @Success 200 {object} models.PricingResponse "Pricing tiers"
// @Router /billing/pricing [get]
func (h *BillingHandler) GetPricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.GetPricing(h.accountService.FreeLimit()))
}
