// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "auth_provider_id", Type: field.TypeString, Unique: true},
		{Name: "plan_tier", Type: field.TypeEnum, Enums: []string{"free", "pro"}, Default: "free"},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "subscription_status", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_auth_provider_id",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[2]},
			},
			{
				Name:    "account_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[4]},
			},
			{
				Name:    "account_stripe_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[5]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompts_accounts_prompts",
				Columns:    []*schema.Column{PromptsColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_account_id",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[7]},
			},
			{
				Name:    "prompt_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		PromptsTable,
	}
)

func init() {
	PromptsTable.ForeignKeys[0].RefTable = AccountsTable
}
