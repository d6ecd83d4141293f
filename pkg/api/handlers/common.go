package handlers

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/pkg/account"
	apierrors "github.com/prompthub/prompthub/pkg/api/errors"
	apimiddleware "github.com/prompthub/prompthub/pkg/api/middleware"
	"github.com/prompthub/prompthub/pkg/models"
)

// currentAccount resolves the local account for the verified identity on the
// request. Accounts are created lazily on first contact, so a request arriving
// before any explicit sync still resolves.
func currentAccount(c echo.Context, accounts *account.Service) (*ent.Account, error) {
	subject, _ := c.Get(apimiddleware.ContextSubject).(string)
	email, _ := c.Get(apimiddleware.ContextEmail).(string)

	acc, err := accounts.GetBySubject(c.Request().Context(), subject)
	if err == nil {
		return acc, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	return accounts.ResolveOrCreate(c.Request().Context(), subject, email)
}

// accountError maps account resolution failures to a response. A first
// contact without an email address is the client's mistake, not ours.
func accountError(c echo.Context, err error) error {
	if errors.Is(err, account.ErrEmailRequired) {
		return apierrors.BadRequestError(c, "An email address is required to create an account")
	}
	return apierrors.InternalError(c, err)
}

// toAccountInfo converts an Ent account to a response model
func toAccountInfo(acc *ent.Account) models.AccountInfo {
	info := models.AccountInfo{
		ID:             acc.ID,
		Email:          acc.Email,
		AuthProviderID: acc.AuthProviderID,
		PlanTier:       string(acc.PlanTier),
		CreatedAt:      acc.CreatedAt.Format(time.RFC3339),
	}
	if acc.SubscriptionStatus != nil {
		info.SubscriptionStatus = *acc.SubscriptionStatus
	}
	return info
}

// toPromptResponse converts an Ent prompt to a response model
func toPromptResponse(p *ent.Prompt) models.PromptResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.PromptResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		ModelUsed: p.ModelUsed,
		Tags:      tags,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
