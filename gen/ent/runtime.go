// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetyo-adi/kas-keluarga/db/ent/schema"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/account"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/category"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/document"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/household"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/householdmember"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ledgerentry"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/ocrresult"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/transaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[2].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescAccountType is the schema descriptor for account_type field.
	accountDescAccountType := accountFields[3].Descriptor()
	// account.DefaultAccountType holds the default value on creation for the account_type field.
	account.DefaultAccountType = accountDescAccountType.Default.(string)
	// accountDescCurrencyCode is the schema descriptor for currency_code field.
	accountDescCurrencyCode := accountFields[4].Descriptor()
	// account.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	account.CurrencyCodeValidator = func() func(string) error {
		validators := accountDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// accountDescIsActive is the schema descriptor for is_active field.
	accountDescIsActive := accountFields[5].Descriptor()
	// account.DefaultIsActive holds the default value on creation for the is_active field.
	account.DefaultIsActive = accountDescIsActive.Default.(bool)
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
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[2].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[3].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int64) error)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[4].Descriptor()
	// document.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	document.MimeTypeValidator = documentDescMimeType.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[5].Descriptor()
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = func() func(string) error {
		validators := documentDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[8].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	householdFields := schema.Household{}.Fields()
	_ = householdFields
	// householdDescName is the schema descriptor for name field.
	householdDescName := householdFields[1].Descriptor()
	// household.NameValidator is a validator for the "name" field. It is called by the builders before save.
	household.NameValidator = householdDescName.Validators[0].(func(string) error)
	// householdDescDefaultCurrency is the schema descriptor for default_currency field.
	householdDescDefaultCurrency := householdFields[2].Descriptor()
	// household.DefaultDefaultCurrency holds the default value on creation for the default_currency field.
	household.DefaultDefaultCurrency = householdDescDefaultCurrency.Default.(string)
	// household.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	household.DefaultCurrencyValidator = func() func(string) error {
		validators := householdDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// householdDescCreatedAt is the schema descriptor for created_at field.
	householdDescCreatedAt := householdFields[3].Descriptor()
	// household.DefaultCreatedAt holds the default value on creation for the created_at field.
	household.DefaultCreatedAt = householdDescCreatedAt.Default.(func() time.Time)
	// householdDescUpdatedAt is the schema descriptor for updated_at field.
	householdDescUpdatedAt := householdFields[4].Descriptor()
	// household.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	household.DefaultUpdatedAt = householdDescUpdatedAt.Default.(func() time.Time)
	// household.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	household.UpdateDefaultUpdatedAt = householdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// householdDescID is the schema descriptor for id field.
	householdDescID := householdFields[0].Descriptor()
	// household.DefaultID holds the default value on creation for the id field.
	household.DefaultID = householdDescID.Default.(func() uuid.UUID)
	householdmemberFields := schema.HouseholdMember{}.Fields()
	_ = householdmemberFields
	// householdmemberDescRole is the schema descriptor for role field.
	householdmemberDescRole := householdmemberFields[3].Descriptor()
	// householdmember.DefaultRole holds the default value on creation for the role field.
	householdmember.DefaultRole = householdmemberDescRole.Default.(string)
	// householdmemberDescJoinedAt is the schema descriptor for joined_at field.
	householdmemberDescJoinedAt := householdmemberFields[4].Descriptor()
	// householdmember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	householdmember.DefaultJoinedAt = householdmemberDescJoinedAt.Default.(func() time.Time)
	// householdmemberDescID is the schema descriptor for id field.
	householdmemberDescID := householdmemberFields[0].Descriptor()
	// householdmember.DefaultID holds the default value on creation for the id field.
	householdmember.DefaultID = householdmemberDescID.Default.(func() uuid.UUID)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescEntryType is the schema descriptor for entry_type field.
	ledgerentryDescEntryType := ledgerentryFields[3].Descriptor()
	// ledgerentry.EntryTypeValidator is a validator for the "entry_type" field. It is called by the builders before save.
	ledgerentry.EntryTypeValidator = func() func(string) error {
		validators := ledgerentryDescEntryType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entry_type string) error {
			for _, fn := range fns {
				if err := fn(entry_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ledgerentryDescAmount is the schema descriptor for amount field.
	ledgerentryDescAmount := ledgerentryFields[4].Descriptor()
	// ledgerentry.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	ledgerentry.AmountValidator = ledgerentryDescAmount.Validators[0].(func(float64) error)
	// ledgerentryDescCurrencyCode is the schema descriptor for currency_code field.
	ledgerentryDescCurrencyCode := ledgerentryFields[5].Descriptor()
	// ledgerentry.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	ledgerentry.CurrencyCodeValidator = func() func(string) error {
		validators := ledgerentryDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryFields[6].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	// ledgerentryDescID is the schema descriptor for id field.
	ledgerentryDescID := ledgerentryFields[0].Descriptor()
	// ledgerentry.DefaultID holds the default value on creation for the id field.
	ledgerentry.DefaultID = ledgerentryDescID.Default.(func() uuid.UUID)
	ocrresultFields := schema.OcrResult{}.Fields()
	_ = ocrresultFields
	// ocrresultDescDocumentType is the schema descriptor for document_type field.
	ocrresultDescDocumentType := ocrresultFields[2].Descriptor()
	// ocrresult.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	ocrresult.DocumentTypeValidator = func() func(string) error {
		validators := ocrresultDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescConfidence is the schema descriptor for confidence field.
	ocrresultDescConfidence := ocrresultFields[3].Descriptor()
	// ocrresult.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ocrresult.ConfidenceValidator = func() func(float32) error {
		validators := ocrresultDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescEngineName is the schema descriptor for engine_name field.
	ocrresultDescEngineName := ocrresultFields[6].Descriptor()
	// ocrresult.EngineNameValidator is a validator for the "engine_name" field. It is called by the builders before save.
	ocrresult.EngineNameValidator = ocrresultDescEngineName.Validators[0].(func(string) error)
	// ocrresultDescPageCount is the schema descriptor for page_count field.
	ocrresultDescPageCount := ocrresultFields[8].Descriptor()
	// ocrresult.DefaultPageCount holds the default value on creation for the page_count field.
	ocrresult.DefaultPageCount = ocrresultDescPageCount.Default.(int)
	// ocrresultDescDurationMs is the schema descriptor for duration_ms field.
	ocrresultDescDurationMs := ocrresultFields[9].Descriptor()
	// ocrresult.DefaultDurationMs holds the default value on creation for the duration_ms field.
	ocrresult.DefaultDurationMs = ocrresultDescDurationMs.Default.(int64)
	// ocrresultDescCreatedAt is the schema descriptor for created_at field.
	ocrresultDescCreatedAt := ocrresultFields[10].Descriptor()
	// ocrresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrresult.DefaultCreatedAt = ocrresultDescCreatedAt.Default.(func() time.Time)
	// ocrresultDescID is the schema descriptor for id field.
	ocrresultDescID := ocrresultFields[0].Descriptor()
	// ocrresult.DefaultID holds the default value on creation for the id field.
	ocrresult.DefaultID = ocrresultDescID.Default.(func() uuid.UUID)
	suggestionFields := schema.Suggestion{}.Fields()
	_ = suggestionFields
	// suggestionDescDescription is the schema descriptor for description field.
	suggestionDescDescription := suggestionFields[3].Descriptor()
	// suggestion.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	suggestion.DescriptionValidator = suggestionDescDescription.Validators[0].(func(string) error)
	// suggestionDescCurrencyCode is the schema descriptor for currency_code field.
	suggestionDescCurrencyCode := suggestionFields[5].Descriptor()
	// suggestion.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	suggestion.CurrencyCodeValidator = func() func(string) error {
		validators := suggestionDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// suggestionDescConfidence is the schema descriptor for confidence field.
	suggestionDescConfidence := suggestionFields[10].Descriptor()
	// suggestion.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	suggestion.ConfidenceValidator = func() func(float32) error {
		validators := suggestionDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// suggestionDescSourceType is the schema descriptor for source_type field.
	suggestionDescSourceType := suggestionFields[11].Descriptor()
	// suggestion.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	suggestion.SourceTypeValidator = func() func(string) error {
		validators := suggestionDescSourceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_type string) error {
			for _, fn := range fns {
				if err := fn(source_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// suggestionDescApproved is the schema descriptor for approved field.
	suggestionDescApproved := suggestionFields[14].Descriptor()
	// suggestion.DefaultApproved holds the default value on creation for the approved field.
	suggestion.DefaultApproved = suggestionDescApproved.Default.(bool)
	// suggestionDescCreatedAt is the schema descriptor for created_at field.
	suggestionDescCreatedAt := suggestionFields[17].Descriptor()
	// suggestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	suggestion.DefaultCreatedAt = suggestionDescCreatedAt.Default.(func() time.Time)
	// suggestionDescID is the schema descriptor for id field.
	suggestionDescID := suggestionFields[0].Descriptor()
	// suggestion.DefaultID holds the default value on creation for the id field.
	suggestion.DefaultID = suggestionDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescDescription is the schema descriptor for description field.
	transactionDescDescription := transactionFields[5].Descriptor()
	// transaction.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	transaction.DescriptionValidator = transactionDescDescription.Validators[0].(func(string) error)
	// transactionDescAmount is the schema descriptor for amount field.
	transactionDescAmount := transactionFields[6].Descriptor()
	// transaction.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	transaction.AmountValidator = transactionDescAmount.Validators[0].(func(float64) error)
	// transactionDescCurrencyCode is the schema descriptor for currency_code field.
	transactionDescCurrencyCode := transactionFields[7].Descriptor()
	// transaction.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	transaction.CurrencyCodeValidator = func() func(string) error {
		validators := transactionDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescFlow is the schema descriptor for flow field.
	transactionDescFlow := transactionFields[8].Descriptor()
	// transaction.FlowValidator is a validator for the "flow" field. It is called by the builders before save.
	transaction.FlowValidator = func() func(string) error {
		validators := transactionDescFlow.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(flow string) error {
			for _, fn := range fns {
				if err := fn(flow); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[12].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
