package prompts

import (
	"context"
	"strings"
	"sync"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

const testFreeLimit = 5

func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func createTestAccount(t *testing.T, client *ent.Client, subject string, tier account.PlanTier) *ent.Account {
	acc, err := client.Account.Create().
		SetEmail(subject + "@example.com").
		SetAuthProviderID(subject).
		SetPlanTier(tier).
		Save(context.Background())
	require.NoError(t, err)
	return acc
}

func TestCreate_FreeTierUnderLimit(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|free", account.PlanTierFree)

	for i := 0; i < testFreeLimit; i++ {
		p, err := service.Create(context.Background(), acc, "Title", "Body text", "chatgpt", nil)
		require.NoError(t, err)
		assert.Equal(t, acc.ID, p.AccountID)
	}

	count, err := service.Count(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, testFreeLimit, count)
}

func TestCreate_FreeTierAtLimitRejected(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|capped", account.PlanTierFree)

	for i := 0; i < testFreeLimit; i++ {
		_, err := service.Create(context.Background(), acc, "Title", "Body text", "chatgpt", nil)
		require.NoError(t, err)
	}

	_, err := service.Create(context.Background(), acc, "One too many", "Body text", "chatgpt", nil)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// The rejected save must not leave a row behind
	count, err := service.Count(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, testFreeLimit, count)
}

func TestCreate_ProTierUnlimited(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|pro", account.PlanTierPro)

	for i := 0; i < testFreeLimit+3; i++ {
		_, err := service.Create(context.Background(), acc, "Title", "Body text", "claude", nil)
		require.NoError(t, err)
	}

	count, err := service.Count(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, testFreeLimit+3, count)
}

func TestCreate_DerivesTitleFromBody(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|untitled", account.PlanTierFree)

	longBody := strings.Repeat("a", 80)
	p, err := service.Create(context.Background(), acc, "", longBody, "chatgpt", nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50)+"...", p.Title)

	shortBody := "short body"
	p, err = service.Create(context.Background(), acc, "", shortBody, "chatgpt", nil)
	require.NoError(t, err)
	assert.Equal(t, shortBody, p.Title)
}

func TestCreate_DeduplicatesTags(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|tags", account.PlanTierFree)

	p, err := service.Create(context.Background(), acc, "Tagged", "Body", "chatgpt",
		[]string{"sql", "coding", "sql", "", "coding"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sql", "coding"}, p.Tags)
}

func TestList_SearchMatchesTitleAndBody(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|search", account.PlanTierPro)

	_, err := service.Create(context.Background(), acc, "SQL helper", "Write a query", "chatgpt", nil)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), acc, "Email draft", "Mention the SQL migration", "chatgpt", nil)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), acc, "Unrelated", "Nothing here", "chatgpt", nil)
	require.NoError(t, err)

	// Case-insensitive, matches title or body
	items, err := service.List(context.Background(), acc.ID, "sql", "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestList_TagFilterExactMatch(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|tagfilter", account.PlanTierPro)

	_, err := service.Create(context.Background(), acc, "A", "Body", "chatgpt", []string{"writing"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), acc, "B", "Body", "chatgpt", []string{"writing", "email"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), acc, "C", "Body", "chatgpt", []string{"coding"})
	require.NoError(t, err)

	items, err := service.List(context.Background(), acc.ID, "", "writing")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Substring of a label must not match
	items, err = service.List(context.Background(), acc.ID, "", "writ")
	require.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestList_ScopedToAccount(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	mine := createTestAccount(t, client, "auth0|mine", account.PlanTierFree)
	theirs := createTestAccount(t, client, "auth0|theirs", account.PlanTierFree)

	_, err := service.Create(context.Background(), mine, "Mine", "Body", "chatgpt", nil)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), theirs, "Theirs", "Body", "chatgpt", nil)
	require.NoError(t, err)

	items, err := service.List(context.Background(), mine.ID, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mine", items[0].Title)
}

func TestGet_OtherAccountsPromptNotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, testFreeLimit)
	owner := createTestAccount(t, client, "auth0|owner", account.PlanTierFree)
	intruder := createTestAccount(t, client, "auth0|intruder", account.PlanTierFree)

	p, err := service.Create(context.Background(), owner, "Secret", "Body", "chatgpt", nil)
	require.NoError(t, err)

	got, err := service.Get(context.Background(), p.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = service.Get(context.Background(), p.ID, intruder.ID)
	assert.True(t, ent.IsNotFound(err), "another account's prompt should look absent")
}

// loggingDriver records every statement so tests can assert on ordering.
type loggingDriver struct {
	dialect.Driver
	mu      sync.Mutex
	queries []string
}

func (d *loggingDriver) record(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries = append(d.queries, query)
}

func (d *loggingDriver) recorded() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.queries...)
}

func (d *loggingDriver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries = nil
}

func (d *loggingDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.record(query)
	return d.Driver.Exec(ctx, query, args, v)
}

func (d *loggingDriver) Query(ctx context.Context, query string, args, v any) error {
	d.record(query)
	return d.Driver.Query(ctx, query, args, v)
}

func (d *loggingDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &loggingTx{Tx: tx, driver: d}, nil
}

type loggingTx struct {
	dialect.Tx
	driver *loggingDriver
}

func (t *loggingTx) Exec(ctx context.Context, query string, args, v any) error {
	t.driver.record(query)
	return t.Tx.Exec(ctx, query, args, v)
}

func (t *loggingTx) Query(ctx context.Context, query string, args, v any) error {
	t.driver.record(query)
	return t.Tx.Query(ctx, query, args, v)
}

// A free-tier save must write the owner's account row before counting, so
// concurrent saves for the same account queue on the row lock instead of
// counting the same snapshot. Engines like Postgres do not serialize
// writers the way sqlite does, which is why the lock has to be explicit.
func TestCreate_FreeTierLocksOwnerRow(t *testing.T) {
	drv, err := entsql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	require.NoError(t, err)
	logDrv := &loggingDriver{Driver: drv}
	client := ent.NewClient(ent.Driver(logDrv))
	defer client.Close()
	require.NoError(t, client.Schema.Create(context.Background()))

	service := NewService(client, testFreeLimit)
	acc := createTestAccount(t, client, "auth0|locked", account.PlanTierFree)

	logDrv.reset()
	_, err = service.Create(context.Background(), acc, "Title", "Body", "chatgpt", nil)
	require.NoError(t, err)

	lockIdx, insertIdx := -1, -1
	for i, q := range logDrv.recorded() {
		switch {
		case lockIdx == -1 && strings.Contains(q, "UPDATE") && strings.Contains(q, "accounts"):
			lockIdx = i
		case insertIdx == -1 && strings.Contains(q, "INSERT") && strings.Contains(q, "prompts"):
			insertIdx = i
		}
	}
	require.NotEqual(t, -1, lockIdx, "free-tier save must write the account row")
	require.NotEqual(t, -1, insertIdx)
	assert.Less(t, lockIdx, insertIdx, "account row write must precede the insert")

	// Pro saves skip the transaction, so no account write happens
	pro := createTestAccount(t, client, "auth0|prolock", account.PlanTierPro)
	logDrv.reset()
	_, err = service.Create(context.Background(), pro, "Title", "Body", "chatgpt", nil)
	require.NoError(t, err)
	for _, q := range logDrv.recorded() {
		assert.NotContains(t, q, "UPDATE")
	}
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "Given", DeriveTitle("Given", "body"))
	assert.Equal(t, "short", DeriveTitle("", "short"))

	long := strings.Repeat("x", 60)
	assert.Equal(t, strings.Repeat("x", 50)+"...", DeriveTitle("", long))

	// Multibyte bodies are cut on rune boundaries
	multibyte := strings.Repeat("é", 60)
	derived := DeriveTitle("", multibyte)
	assert.Equal(t, strings.Repeat("é", 50)+"...", derived)
}
