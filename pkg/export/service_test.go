package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/prompthub/prompthub/ent"
	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/enttest"
	"github.com/prompthub/prompthub/pkg/prompts"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client, *ent.Account) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	acc, err := client.Account.Create().
		SetEmail("export@example.com").
		SetAuthProviderID("auth0|export").
		SetPlanTier(account.PlanTierPro).
		Save(context.Background())
	require.NoError(t, err)

	promptService := prompts.NewService(client, 5)
	return NewService(promptService), client, acc
}

func seedPrompts(t *testing.T, client *ent.Client, accountID int) {
	titles := []string{"SQL helper", "Email draft", "Code review"}
	for _, title := range titles {
		_, err := client.Prompt.Create().
			SetAccountID(accountID).
			SetTitle(title).
			SetBody("Body for " + title).
			SetModelUsed("chatgpt").
			SetTags([]string{"test"}).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func TestExport_InvalidFormat(t *testing.T) {
	service, _, acc := setupTestService(t)

	_, err := service.Export(context.Background(), acc.ID, "pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExport_CSV(t *testing.T) {
	service, client, acc := setupTestService(t)
	seedPrompts(t, client, acc.ID)

	result, err := service.Export(context.Background(), acc.ID, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 prompts
	assert.Equal(t, []string{"ID", "Title", "Body", "Model", "Tags", "Created At"}, records[0])

	var titles []string
	for _, row := range records[1:] {
		titles = append(titles, row[1])
	}
	assert.Contains(t, titles, "SQL helper")
	assert.Contains(t, titles, "Email draft")
	assert.Contains(t, titles, "Code review")
}

func TestExport_CSVEmptyLibrary(t *testing.T) {
	service, _, acc := setupTestService(t)

	result, err := service.Export(context.Background(), acc.ID, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

func TestExport_XLSX(t *testing.T) {
	service, client, acc := setupTestService(t)
	seedPrompts(t, client, acc.ID)

	result, err := service.Export(context.Background(), acc.ID, FormatXLSX)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Prompts")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 prompts
	assert.Equal(t, "Title", rows[0][1])
}
