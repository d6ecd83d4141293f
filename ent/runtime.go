// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prompthub/prompthub/ent/account"
	"github.com/prompthub/prompthub/ent/prompt"
	"github.com/prompthub/prompthub/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[0].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescAuthProviderID is the schema descriptor for auth_provider_id field.
	accountDescAuthProviderID := accountFields[1].Descriptor()
	// account.AuthProviderIDValidator is a validator for the "auth_provider_id" field. It is called by the builders before save.
	account.AuthProviderIDValidator = accountDescAuthProviderID.Validators[0].(func(string) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[6].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[7].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescTitle is the schema descriptor for title field.
	promptDescTitle := promptFields[1].Descriptor()
	// prompt.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	prompt.TitleValidator = func() func(string) error {
		validators := promptDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// promptDescBody is the schema descriptor for body field.
	promptDescBody := promptFields[2].Descriptor()
	// prompt.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	prompt.BodyValidator = promptDescBody.Validators[0].(func(string) error)
	// promptDescModelUsed is the schema descriptor for model_used field.
	promptDescModelUsed := promptFields[3].Descriptor()
	// prompt.ModelUsedValidator is a validator for the "model_used" field. It is called by the builders before save.
	prompt.ModelUsedValidator = promptDescModelUsed.Validators[0].(func(string) error)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[5].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[6].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
}
