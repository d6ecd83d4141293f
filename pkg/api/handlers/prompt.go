package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/pkg/account"
	"github.com/prompthub/prompthub/pkg/ai/llm"
	apierrors "github.com/prompthub/prompthub/pkg/api/errors"
	"github.com/prompthub/prompthub/pkg/metrics"
	"github.com/prompthub/prompthub/pkg/models"
	"github.com/prompthub/prompthub/pkg/prompts"
)

// PromptHandler handles saved prompt endpoints
type PromptHandler struct {
	promptService  *prompts.Service
	accountService *account.Service
	llmRegistry    *llm.Registry
	metrics        *metrics.Metrics
	validator      *validator.Validate
}

// NewPromptHandler creates a new prompt handler. m may be nil.
func NewPromptHandler(promptService *prompts.Service, accountService *account.Service, llmRegistry *llm.Registry, m *metrics.Metrics) *PromptHandler {
	return &PromptHandler{
		promptService:  promptService,
		accountService: accountService,
		llmRegistry:    llmRegistry,
		metrics:        m,
		validator:      validator.New(),
	}
}

// Create handles saving a prompt
// @Summary Save a prompt
// @Description Save a prompt to the account's library. Free-tier accounts are capped; the response directs them to upgrade.
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePromptRequest true "Prompt to save"
// @Success 201 {object} models.PromptResponse "Saved prompt"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Free plan limit reached"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /prompts [post]
func (h *PromptHandler) Create(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	var req models.CreatePromptRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	p, err := h.promptService.Create(c.Request().Context(), acc, req.Title, req.Body, req.ModelUsed, req.Tags)
	if err != nil {
		if errors.Is(err, prompts.ErrQuotaExceeded) {
			if h.metrics != nil {
				h.metrics.QuotaRejections.Inc()
			}
			return apierrors.QuotaError(c, fmt.Sprintf(
				"You have reached the free plan limit of %d saved prompts. Upgrade to Pro for unlimited prompts.",
				h.promptService.FreeLimit(),
			))
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.PromptsSaved.Inc()
	}

	return c.JSON(http.StatusCreated, toPromptResponse(p))
}

// List handles listing the account's prompt library
// @Summary List prompts
// @Description List the account's prompts, newest first, with optional search and tag filtering
// @Tags Prompts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring match on title or body"
// @Param tag query string false "Exact tag label match"
// @Success 200 {object} models.PromptListResponse "Prompts with quota context"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /prompts [get]
func (h *PromptHandler) List(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	items, err := h.promptService.List(c.Request().Context(), acc.ID, c.QueryParam("search"), c.QueryParam("tag"))
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	// The quota context reflects the full library, not the filtered view.
	count, limit, err := h.accountService.Usage(c.Request().Context(), acc)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	responses := make([]models.PromptResponse, len(items))
	for i, p := range items {
		responses[i] = toPromptResponse(p)
	}

	return c.JSON(http.StatusOK, models.PromptListResponse{
		Prompts:     responses,
		PromptCount: count,
		PromptLimit: limit,
		PlanTier:    string(acc.PlanTier),
	})
}

// Get handles retrieving a single prompt
// @Summary Get a prompt
// @Description Retrieve a single prompt by ID. Prompts belonging to other accounts are reported as not found.
// @Tags Prompts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Prompt ID"
// @Success 200 {object} models.PromptResponse "The prompt"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /prompts/{id} [get]
func (h *PromptHandler) Get(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	promptID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Prompt ID must be a number",
		})
	}

	p, err := h.promptService.Get(c.Request().Context(), promptID, acc.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "prompt")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, toPromptResponse(p))
}

// Test handles running a prompt against an AI backend
// @Summary Test a prompt
// @Description Send a prompt body to the selected AI backend and return its reply. Does not save the prompt or count against quota.
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TestPromptRequest true "Prompt to test"
// @Success 200 {object} models.TestPromptResponse "Backend reply"
// @Failure 400 {object} models.ErrorResponse "Invalid request or unknown model"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /prompts/test [post]
func (h *PromptHandler) Test(c echo.Context) error {
	if _, err := currentAccount(c, h.accountService); err != nil {
		return accountError(c, err)
	}

	var req models.TestPromptRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	client, err := h.llmRegistry.Get(req.ModelUsed)
	if err != nil {
		return apierrors.BadRequestError(c, fmt.Sprintf("Unknown model %q", req.ModelUsed))
	}

	resp, err := client.Chat(c.Request().Context(), llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "user", Content: req.Body},
		},
	})
	if err != nil {
		h.countPromptTest(req.ModelUsed, "error")
		return apierrors.InternalError(c, err)
	}

	h.countPromptTest(req.ModelUsed, "success")

	return c.JSON(http.StatusOK, models.TestPromptResponse{
		Success:  true,
		Response: resp.Message,
	})
}

func (h *PromptHandler) countPromptTest(provider, status string) {
	if h.metrics != nil {
		h.metrics.PromptTests.WithLabelValues(provider, status).Inc()
	}
}
