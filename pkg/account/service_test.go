package account

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/prompthub/ent"
	entaccount "github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/enttest"
	"github.com/prompthub/prompthub/ent/hook"
	"github.com/prompthub/prompthub/pkg/cache"

	_ "github.com/mattn/go-sqlite3"
)

const testFreeLimit = 5

func setupTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewClientFromRedis(rdb)
}

func TestResolveOrCreate_CreatesOnFirstContact(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	acc, err := service.ResolveOrCreate(context.Background(), "auth0|new", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", acc.Email)
	assert.Equal(t, "auth0|new", acc.AuthProviderID)
	assert.Equal(t, entaccount.PlanTierFree, acc.PlanTier)
	assert.Nil(t, acc.SubscriptionStatus)
}

func TestResolveOrCreate_LosesCreateRace(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)
	ctx := context.Background()

	// Simulate a competing first call that lands its insert between our
	// lookup miss and our create. The hook fires before the create mutation
	// executes, so the unique constraint on auth_provider_id trips and the
	// loser has to re-read the winner's row.
	var raced bool
	client.Account.Use(func(next ent.Mutator) ent.Mutator {
		return hook.AccountFunc(func(ctx context.Context, m *ent.AccountMutation) (ent.Value, error) {
			if m.Op().Is(ent.OpCreate) && !raced {
				raced = true
				_, err := client.Account.Create().
					SetEmail("winner@example.com").
					SetAuthProviderID("auth0|raced").
					Save(ctx)
				require.NoError(t, err)
			}
			return next.Mutate(ctx, m)
		})
	})

	acc, err := service.ResolveOrCreate(ctx, "auth0|raced", "loser@example.com")
	require.NoError(t, err)
	assert.True(t, raced)
	assert.Equal(t, "winner@example.com", acc.Email, "the winning insert is authoritative")

	total, err := client.Account.Query().
		Where(entaccount.AuthProviderIDEQ("auth0|raced")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestResolveOrCreate_Idempotent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	first, err := service.ResolveOrCreate(context.Background(), "auth0|repeat", "repeat@example.com")
	require.NoError(t, err)

	// Second sync with a different email must not create a row or change anything
	second, err := service.ResolveOrCreate(context.Background(), "auth0|repeat", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "repeat@example.com", second.Email)

	total, err := client.Account.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestResolveOrCreate_EmailRequiredForNewAccount(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	_, err := service.ResolveOrCreate(context.Background(), "auth0|noemail", "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestResolveOrCreate_EmailNotNeededForExisting(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	_, err := service.ResolveOrCreate(context.Background(), "auth0|existing", "existing@example.com")
	require.NoError(t, err)

	acc, err := service.ResolveOrCreate(context.Background(), "auth0|existing", "")
	require.NoError(t, err)
	assert.Equal(t, "existing@example.com", acc.Email)
}

func TestUsage_FreeTier(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	acc, err := service.ResolveOrCreate(context.Background(), "auth0|usage", "usage@example.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := client.Prompt.Create().
			SetAccountID(acc.ID).
			SetTitle("T").
			SetBody("B").
			SetModelUsed("chatgpt").
			Save(context.Background())
		require.NoError(t, err)
	}

	count, limit, err := service.Usage(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, testFreeLimit, limit)
}

func TestUsage_ProTierUnlimited(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	acc, err := client.Account.Create().
		SetEmail("pro@example.com").
		SetAuthProviderID("auth0|prousage").
		SetPlanTier(entaccount.PlanTierPro).
		Save(context.Background())
	require.NoError(t, err)

	count, limit, err := service.Usage(context.Background(), acc)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, UnlimitedPrompts, limit)
}

func TestGetBySubject_CachesAccount(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	cacheClient := setupTestCache(t)
	service := NewService(client, cacheClient, nil, testFreeLimit)

	created, err := service.ResolveOrCreate(context.Background(), "auth0|cached", "cached@example.com")
	require.NoError(t, err)

	// First read populates the cache
	acc, err := service.GetBySubject(context.Background(), "auth0|cached")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)

	exists, err := cacheClient.Exists(context.Background(), "account:subject:auth0|cached")
	require.NoError(t, err)
	assert.True(t, exists)

	// Second read is served from the cache
	acc, err = service.GetBySubject(context.Background(), "auth0|cached")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)
	assert.Equal(t, "cached@example.com", acc.Email)
}

func TestInvalidate_DropsCacheEntry(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	cacheClient := setupTestCache(t)
	service := NewService(client, cacheClient, nil, testFreeLimit)

	_, err := service.ResolveOrCreate(context.Background(), "auth0|stale", "stale@example.com")
	require.NoError(t, err)

	_, err = service.GetBySubject(context.Background(), "auth0|stale")
	require.NoError(t, err)

	service.Invalidate(context.Background(), "auth0|stale")

	exists, err := cacheClient.Exists(context.Background(), "account:subject:auth0|stale")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetBySubject_UnknownSubject(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	service := NewService(client, nil, nil, testFreeLimit)

	_, err := service.GetBySubject(context.Background(), "auth0|nobody")
	assert.True(t, ent.IsNotFound(err))
}
