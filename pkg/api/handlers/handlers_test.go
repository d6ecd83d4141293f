package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/enttest"
	"github.com/prompthub/prompthub/pkg/account"
	"github.com/prompthub/prompthub/pkg/ai/llm"
	apimiddleware "github.com/prompthub/prompthub/pkg/api/middleware"
	"github.com/prompthub/prompthub/pkg/billing"
	"github.com/prompthub/prompthub/pkg/export"
	"github.com/prompthub/prompthub/pkg/models"
	"github.com/prompthub/prompthub/pkg/prompts"

	_ "github.com/mattn/go-sqlite3"
)

const testFreeLimit = 5

type testEnv struct {
	e       *echo.Echo
	client  *ent.Client
	account *AccountHandler
	prompt  *PromptHandler
	billing *BillingHandler
	export  *ExportHandler
}

func setupTestEnv(t *testing.T) *testEnv {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	accountService := account.NewService(client, nil, nil, testFreeLimit)
	promptService := prompts.NewService(client, testFreeLimit)
	exportService := export.NewService(promptService)
	billingService := billing.NewService(client, accountService, &billing.StripeConfig{
		WebhookSecret: "whsec_test",
		PricePro:      "price_pro",
		BaseURL:       "https://prompthub.dev",
	})

	return &testEnv{
		e:       echo.New(),
		client:  client,
		account: NewAccountHandler(accountService),
		prompt:  NewPromptHandler(promptService, accountService, llm.NewRegistry(), nil),
		billing: NewBillingHandler(billingService, accountService),
		export:  NewExportHandler(exportService, accountService),
	}
}

// authedRequest builds a context the way RequireIdentity leaves it after
// verifying a credential.
func (env *testEnv) authedRequest(method, path string, body io.Reader, subject, email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.Set(apimiddleware.ContextSubject, subject)
	c.Set(apimiddleware.ContextEmail, email)
	return c, rec
}

func TestSync_CreatesAccount(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := env.authedRequest(http.MethodPost, "/api/v1/auth/sync", nil, "auth0|sync1", "sync1@example.com")
	require.NoError(t, env.account.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.AccountInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "sync1@example.com", info.Email)
	assert.Equal(t, "free", info.PlanTier)
	assert.Empty(t, info.SubscriptionStatus)
}

func TestSync_Idempotent(t *testing.T) {
	env := setupTestEnv(t)

	c, _ := env.authedRequest(http.MethodPost, "/api/v1/auth/sync", nil, "auth0|sync2", "sync2@example.com")
	require.NoError(t, env.account.Sync(c))

	c, rec := env.authedRequest(http.MethodPost, "/api/v1/auth/sync", nil, "auth0|sync2", "sync2@example.com")
	require.NoError(t, env.account.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	total, err := env.client.Account.Query().Count(c.Request().Context())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestSync_EmailRequired(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := env.authedRequest(http.MethodPost, "/api/v1/auth/sync", nil, "auth0|noemail", "")
	require.NoError(t, env.account.Sync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSync_BodyEmailOverridesTokenEmail(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"email":"preferred@example.com"}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/auth/sync", body, "auth0|override", "token@example.com")
	require.NoError(t, env.account.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.AccountInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "preferred@example.com", info.Email)
}

func TestGetUsage_FreeTier(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := env.authedRequest(http.MethodGet, "/api/v1/account/usage", nil, "auth0|usage", "usage@example.com")
	require.NoError(t, env.account.GetUsage(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var usage models.UsageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usage))
	assert.Equal(t, 0, usage.PromptCount)
	assert.Equal(t, testFreeLimit, usage.PromptLimit)
	assert.Equal(t, testFreeLimit, usage.Remaining)
	assert.Equal(t, "free", usage.Tier)
}

func TestCreatePrompt_Success(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"title":"My prompt","body":"Do the thing","model_used":"chatgpt","tags":["test"]}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|creator", "creator@example.com")
	require.NoError(t, env.prompt.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.PromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "My prompt", resp.Title)
	assert.Equal(t, []string{"test"}, resp.Tags)
}

func TestCreatePrompt_MissingBodyRejected(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"title":"No body","model_used":"chatgpt"}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|invalid", "invalid@example.com")
	require.NoError(t, env.prompt.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePrompt_QuotaExceeded(t *testing.T) {
	env := setupTestEnv(t)

	for i := 0; i < testFreeLimit; i++ {
		body := strings.NewReader(`{"body":"Prompt body","model_used":"chatgpt"}`)
		c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|capped", "capped@example.com")
		require.NoError(t, env.prompt.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	body := strings.NewReader(`{"body":"One too many","model_used":"chatgpt"}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|capped", "capped@example.com")
	require.NoError(t, env.prompt.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "quota_exceeded", errResp.Error)
	assert.Contains(t, errResp.Message, "limit")
	assert.Contains(t, errResp.Message, "Upgrade")
}

func TestListPrompts_IncludesQuotaContext(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"body":"Listable prompt","model_used":"chatgpt"}`)
	c, _ := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|lister", "lister@example.com")
	require.NoError(t, env.prompt.Create(c))

	c, rec := env.authedRequest(http.MethodGet, "/api/v1/prompts", nil, "auth0|lister", "lister@example.com")
	require.NoError(t, env.prompt.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PromptListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Prompts, 1)
	assert.Equal(t, 1, resp.PromptCount)
	assert.Equal(t, testFreeLimit, resp.PromptLimit)
	assert.Equal(t, "free", resp.PlanTier)
}

func TestListPrompts_FirstContactWithoutEmail(t *testing.T) {
	env := setupTestEnv(t)

	// Lazy account creation needs an email; a credential without one is a
	// client problem, not a server failure.
	c, rec := env.authedRequest(http.MethodGet, "/api/v1/prompts", nil, "auth0|ghost", "")
	require.NoError(t, env.prompt.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "bad_request", errResp.Error)
}

func TestGetPrompt_OwnershipNotLeaked(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"body":"Owned prompt","model_used":"chatgpt"}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|owner", "owner@example.com")
	require.NoError(t, env.prompt.Create(c))
	var created models.PromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// A different account asking for it sees a plain 404
	c, rec = env.authedRequest(http.MethodGet, "/api/v1/prompts/:id", nil, "auth0|other", "other@example.com")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))
	require.NoError(t, env.prompt.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "not_found", errResp.Error)
}

func TestGetPrompt_InvalidID(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := env.authedRequest(http.MethodGet, "/api/v1/prompts/:id", nil, "auth0|badid", "badid@example.com")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, env.prompt.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTestPrompt_UnknownModel(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"body":"Test me","model_used":"nonsense"}`)
	c, rec := env.authedRequest(http.MethodPost, "/api/v1/prompts/test", body, "auth0|tester", "tester@example.com")
	require.NoError(t, env.prompt.Test(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nonsense")
}

func TestWebhook_InvalidSignature(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", strings.NewReader(`{"type":"x"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.NoError(t, env.billing.HandleWebhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPricing_Public(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/pricing", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.NoError(t, env.billing.GetPricing(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var pricing models.PricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pricing))
	require.Len(t, pricing.Tiers, 2)
	assert.Equal(t, testFreeLimit, pricing.Tiers[0].PromptLimit)
	assert.Equal(t, account.UnlimitedPrompts, pricing.Tiers[1].PromptLimit)
}

func TestExportDownload_CSV(t *testing.T) {
	env := setupTestEnv(t)

	body := strings.NewReader(`{"body":"Exportable prompt","model_used":"chatgpt"}`)
	c, _ := env.authedRequest(http.MethodPost, "/api/v1/prompts", body, "auth0|exporter", "exporter@example.com")
	require.NoError(t, env.prompt.Create(c))

	c, rec := env.authedRequest(http.MethodGet, "/api/v1/prompts/export?format=csv", nil, "auth0|exporter", "exporter@example.com")
	require.NoError(t, env.export.Download(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "Exportable prompt")
}

func TestExportDownload_InvalidFormat(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := env.authedRequest(http.MethodGet, "/api/v1/prompts/export?format=pdf", nil, "auth0|exporter2", "exporter2@example.com")
	require.NoError(t, env.export.Download(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
