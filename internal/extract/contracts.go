package extract

import (
	"context"
	"time"
)

// Recognition is the raw-text output of an OCR/text backend.
type Recognition struct {
	Text  string
	Pages int
}

// Recognizer turns document bytes into raw text. It is the substitutable OCR
// step: engines only require deterministic output for identical input.
type Recognizer interface {
	Recognize(ctx context.Context, data []byte, mimeType string) (Recognition, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, data []byte, mimeType string) (Recognition, error)

func (f RecognizerFunc) Recognize(ctx context.Context, data []byte, mimeType string) (Recognition, error) {
	return f(ctx, data, mimeType)
}

// Engine parses one document category into structured fields.
type Engine interface {
	Extract(ctx context.Context, data []byte, mimeType string) (*Result, error)
}

// Result is the full output of one extraction run.
type Result struct {
	RawText    string
	Data       ExtractedData
	Confidence float32
	Engine     string
	Format     string
	Pages      int
	Duration   time.Duration
}

// ExtractedData holds the optional structured sub-records parsed from raw
// text. Each sub-record carries its own confidence.
type ExtractedData struct {
	Merchant      *MerchantInfo      `json:"merchant,omitempty"`
	Amount        *AmountInfo        `json:"amount,omitempty"`
	Date          *DateInfo          `json:"date,omitempty"`
	LineItems     []LineItem         `json:"line_items,omitempty"`
	BankStatement *BankStatementInfo `json:"bank_statement,omitempty"`
}

type MerchantInfo struct {
	Name       string  `json:"name"`
	Address    string  `json:"address,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Confidence float32 `json:"confidence"`
}

type AmountInfo struct {
	Total      float64  `json:"total"`
	Currency   string   `json:"currency"`
	Subtotal   *float64 `json:"subtotal,omitempty"`
	Tax        *float64 `json:"tax,omitempty"`
	Confidence float32  `json:"confidence"`
}

type DateInfo struct {
	Date       time.Time `json:"date"`
	Confidence float32   `json:"confidence"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Confidence  float32 `json:"confidence"`
}

type BankStatementInfo struct {
	AccountNumber string                     `json:"account_number,omitempty"`
	BankName      string                     `json:"bank_name,omitempty"`
	PeriodStart   *time.Time                 `json:"period_start,omitempty"`
	PeriodEnd     *time.Time                 `json:"period_end,omitempty"`
	Transactions  []BankStatementTransaction `json:"transactions,omitempty"`
}

// BankStatementTransaction is one parsed statement row. Amount is signed:
// debits are negative.
type BankStatementTransaction struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Balance     float64   `json:"balance"`
	Type        string    `json:"type"`
	Reference   string    `json:"reference,omitempty"`
}
