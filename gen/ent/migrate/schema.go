// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "account_type", Type: field.TypeString, Default: "CASH"},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "accounts_households_accounts",
				Columns:    []*schema.Column{AccountsColumns[7]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "account_household_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[7], AccountsColumns[4]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_households_categories",
				Columns:    []*schema.Column{CategoriesColumns[2]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_household_id_name",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[2], CategoriesColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "uploaded_by", Type: field.TypeUUID},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_households_documents",
				Columns:    []*schema.Column{DocumentsColumns[12]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_household_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[9]},
			},
			{
				Name:    "document_household_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[5]},
			},
		},
	}
	// HouseholdsColumns holds the columns for the "households" table.
	HouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "default_currency", Type: field.TypeString, Size: 3, Default: "IDR", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HouseholdsTable holds the schema information for the "households" table.
	HouseholdsTable = &schema.Table{
		Name:       "households",
		Columns:    HouseholdsColumns,
		PrimaryKey: []*schema.Column{HouseholdsColumns[0]},
	}
	// HouseholdMembersColumns holds the columns for the "household_members" table.
	HouseholdMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString, Default: "member"},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// HouseholdMembersTable holds the schema information for the "household_members" table.
	HouseholdMembersTable = &schema.Table{
		Name:       "household_members",
		Columns:    HouseholdMembersColumns,
		PrimaryKey: []*schema.Column{HouseholdMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "household_members_households_members",
				Columns:    []*schema.Column{HouseholdMembersColumns[4]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "householdmember_household_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{HouseholdMembersColumns[4], HouseholdMembersColumns[1]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entry_type", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "transaction_id", Type: field.TypeUUID},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ledger_entries_accounts_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[5]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ledger_entries_transactions_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[6]},
				RefColumns: []*schema.Column{TransactionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[6]},
			},
			{
				Name:    "ledgerentry_account_id",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[5]},
			},
		},
	}
	// OcrResultsColumns holds the columns for the "ocr_results" table.
	OcrResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "engine_name", Type: field.TypeString},
		{Name: "format", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// OcrResultsTable holds the schema information for the "ocr_results" table.
	OcrResultsTable = &schema.Table{
		Name:       "ocr_results",
		Columns:    OcrResultsColumns,
		PrimaryKey: []*schema.Column{OcrResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_results_documents_ocr_results",
				Columns:    []*schema.Column{OcrResultsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrresult_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[10], OcrResultsColumns[9]},
			},
		},
	}
	// TransactionSuggestionsColumns holds the columns for the "transaction_suggestions" table.
	TransactionSuggestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "merchant", Type: field.TypeString, Nullable: true},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
		{Name: "category_name", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "source_type", Type: field.TypeString},
		{Name: "line_item_index", Type: field.TypeInt, Nullable: true},
		{Name: "original_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "transaction_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ocr_result_id", Type: field.TypeUUID},
	}
	// TransactionSuggestionsTable holds the schema information for the "transaction_suggestions" table.
	TransactionSuggestionsTable = &schema.Table{
		Name:       "transaction_suggestions",
		Columns:    TransactionSuggestionsColumns,
		PrimaryKey: []*schema.Column{TransactionSuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transaction_suggestions_ocr_results_suggestions",
				Columns:    []*schema.Column{TransactionSuggestionsColumns[17]},
				RefColumns: []*schema.Column{OcrResultsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suggestion_document_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionSuggestionsColumns[1]},
			},
			{
				Name:    "suggestion_ocr_result_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionSuggestionsColumns[17]},
			},
			{
				Name:    "suggestion_approved",
				Unique:  false,
				Columns: []*schema.Column{TransactionSuggestionsColumns[13]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "suggestion_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "flow", Type: field.TypeString},
		{Name: "merchant", Type: field.TypeString, Nullable: true},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_accounts_transactions",
				Columns:    []*schema.Column{TransactionsColumns[10]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "transactions_categories_transactions",
				Columns:    []*schema.Column{TransactionsColumns[11]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "transactions_households_transactions",
				Columns:    []*schema.Column{TransactionsColumns[12]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_household_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[12], TransactionsColumns[7]},
			},
			{
				Name:    "transaction_account_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CategoriesTable,
		DocumentsTable,
		HouseholdsTable,
		HouseholdMembersTable,
		LedgerEntriesTable,
		OcrResultsTable,
		TransactionSuggestionsTable,
		TransactionsTable,
	}
)

func init() {
	AccountsTable.ForeignKeys[0].RefTable = HouseholdsTable
	AccountsTable.Annotation = &entsql.Annotation{
		Table: "accounts",
	}
	CategoriesTable.ForeignKeys[0].RefTable = HouseholdsTable
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	DocumentsTable.ForeignKeys[0].RefTable = HouseholdsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	HouseholdsTable.Annotation = &entsql.Annotation{
		Table: "households",
	}
	HouseholdMembersTable.ForeignKeys[0].RefTable = HouseholdsTable
	HouseholdMembersTable.Annotation = &entsql.Annotation{
		Table: "household_members",
	}
	LedgerEntriesTable.ForeignKeys[0].RefTable = AccountsTable
	LedgerEntriesTable.ForeignKeys[1].RefTable = TransactionsTable
	LedgerEntriesTable.Annotation = &entsql.Annotation{
		Table: "ledger_entries",
	}
	OcrResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	OcrResultsTable.Annotation = &entsql.Annotation{
		Table: "ocr_results",
	}
	TransactionSuggestionsTable.ForeignKeys[0].RefTable = OcrResultsTable
	TransactionSuggestionsTable.Annotation = &entsql.Annotation{
		Table: "transaction_suggestions",
	}
	TransactionsTable.ForeignKeys[0].RefTable = AccountsTable
	TransactionsTable.ForeignKeys[1].RefTable = CategoriesTable
	TransactionsTable.ForeignKeys[2].RefTable = HouseholdsTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
