package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/pkg/account"
	apierrors "github.com/prompthub/prompthub/pkg/api/errors"
	apimiddleware "github.com/prompthub/prompthub/pkg/api/middleware"
	"github.com/prompthub/prompthub/pkg/models"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService *account.Service
	validator      *validator.Validate
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      validator.New(),
	}
}

// Sync handles the post-login account sync
// @Summary Sync account after login
// @Description Resolve the local account for the verified identity, creating it on first contact. Idempotent.
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SyncAccountRequest false "Optional email override for first-time account creation"
// @Success 200 {object} models.AccountInfo "Resolved account"
// @Failure 400 {object} models.ErrorResponse "Email required for a new account"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/sync [post]
func (h *AccountHandler) Sync(c echo.Context) error {
	subject, _ := c.Get(apimiddleware.ContextSubject).(string)
	email, _ := c.Get(apimiddleware.ContextEmail).(string)

	// Body is optional; a provided email takes precedence over the one
	// carried in the credential.
	var req models.SyncAccountRequest
	if err := c.Bind(&req); err == nil && req.Email != "" {
		if err := h.validator.Struct(req); err != nil {
			return apierrors.ValidationError(c, err)
		}
		email = req.Email
	}

	acc, err := h.accountService.ResolveOrCreate(c.Request().Context(), subject, email)
	if err != nil {
		return accountError(c, err)
	}

	return c.JSON(http.StatusOK, toAccountInfo(acc))
}

// GetUsage handles retrieving saved-prompt quota usage
// @Summary Get quota usage
// @Description Report the account's saved-prompt count against its tier limit
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UsageResponse "Current usage"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /account/usage [get]
func (h *AccountHandler) GetUsage(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	count, limit, err := h.accountService.Usage(c.Request().Context(), acc)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	remaining := account.UnlimitedPrompts
	if limit != account.UnlimitedPrompts {
		remaining = limit - count
		if remaining < 0 {
			remaining = 0
		}
	}

	return c.JSON(http.StatusOK, models.UsageResponse{
		PromptCount: count,
		PromptLimit: limit,
		Remaining:   remaining,
		Tier:        string(acc.PlanTier),
	})
}
