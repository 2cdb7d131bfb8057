package suggest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/internal/extract"
)

type fakeHistory struct {
	merchantHits map[string]CategoryRef
	categories   map[string]CategoryRef
}

func (f *fakeHistory) CategoryForMerchant(_ context.Context, _ uuid.UUID, needle string) (*CategoryRef, error) {
	for key, ref := range f.merchantHits {
		if strings.Contains(strings.ToLower(needle), strings.ToLower(key)) {
			r := ref
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeHistory) CategoryByName(_ context.Context, _ uuid.UUID, name string) (*CategoryRef, error) {
	if ref, ok := f.categories[name]; ok {
		r := ref
		return &r, nil
	}
	return nil, nil
}

func receiptInput() Input {
	sub := 58000.0
	return Input{
		DocumentType: constants.DocTypeReceipt,
		Currency:     "IDR",
		Data: extract.ExtractedData{
			Merchant: &extract.MerchantInfo{Name: "INDOMARET TEBET", Confidence: 0.8},
			Amount:   &extract.AmountInfo{Total: 64380, Currency: "IDR", Subtotal: &sub, Confidence: 0.9},
			Date:     &extract.DateInfo{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Confidence: 0.85},
			LineItems: []extract.LineItem{
				{Description: "Kopi Susu", Quantity: 2, UnitPrice: 25000, TotalPrice: 50000, Confidence: 0.7},
				{Description: "Roti Tawar", Quantity: 1, UnitPrice: 8000, TotalPrice: 8000, Confidence: 0.7},
			},
		},
	}
}

func TestGenerateReceiptSuggestions(t *testing.T) {
	g := NewGenerator(&fakeHistory{}, nil)
	hid := uuid.New()

	out, err := g.Generate(context.Background(), hid, receiptInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("suggestions = %d, want 3 (main + 2 items)", len(out))
	}

	main := out[0]
	if main.Amount != -64380 {
		t.Errorf("main amount = %v, want -64380 (expense)", main.Amount)
	}
	if main.SourceType != constants.SourceReceipt {
		t.Errorf("source = %q", main.SourceType)
	}
	// base 0.5 + merchant 0.2 + amount 0.2 + date 0.1
	if main.Confidence != 1.0 {
		t.Errorf("main confidence = %v, want 1.0", main.Confidence)
	}
	if main.LineItemIndex != nil {
		t.Error("main suggestion must not carry a line item index")
	}

	item := out[1]
	if item.Amount != -50000 {
		t.Errorf("item amount = %v", item.Amount)
	}
	if item.LineItemIndex == nil || *item.LineItemIndex != 0 {
		t.Errorf("item index = %v", item.LineItemIndex)
	}
	if item.Confidence != 0.7 {
		t.Errorf("item confidence = %v, want own extraction confidence", item.Confidence)
	}
	// "Kopi Susu" hits the keyword table
	if item.CategoryName != "Food & Dining" {
		t.Errorf("item category = %q", item.CategoryName)
	}
}

func TestGenerateUsesHistoryBeforeRules(t *testing.T) {
	langganan := CategoryRef{ID: uuid.New(), Name: "Belanja Bulanan"}
	g := NewGenerator(&fakeHistory{
		merchantHits: map[string]CategoryRef{"indomaret": langganan},
	}, nil)

	out, err := g.Generate(context.Background(), uuid.New(), receiptInput())
	if err != nil {
		t.Fatal(err)
	}
	main := out[0]
	// history match wins over the "indomaret" -> Groceries rule
	if main.CategoryName != "Belanja Bulanan" {
		t.Errorf("category = %q, want history category", main.CategoryName)
	}
	if main.CategoryID == nil || *main.CategoryID != langganan.ID {
		t.Errorf("category id = %v", main.CategoryID)
	}
}

func TestGenerateRuleFallbackAndNoMatch(t *testing.T) {
	g := NewGenerator(&fakeHistory{}, nil)
	in := receiptInput()
	in.Data.Merchant.Name = "PLN PRABAYAR"
	in.Data.LineItems = nil

	out, err := g.Generate(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].CategoryName != "Utilities" {
		t.Errorf("category = %q, want Utilities", out[0].CategoryName)
	}

	in.Data.Merchant.Name = "ZZZ UNKNOWN SHOP"
	out, err = g.Generate(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].CategoryName != "" || out[0].CategoryID != nil {
		t.Errorf("unknown merchant must get no category, got %q", out[0].CategoryName)
	}
}

func TestGenerateBankStatementSuggestions(t *testing.T) {
	g := NewGenerator(&fakeHistory{}, nil)
	in := Input{
		DocumentType: constants.DocTypeBankStatement,
		Currency:     "IDR",
		Data: extract.ExtractedData{
			BankStatement: &extract.BankStatementInfo{
				BankName: "BCA",
				Transactions: []extract.BankStatementTransaction{
					{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Description: "BELANJA INDOMARET", Amount: -150000, Type: "DEBIT"},
					{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Description: "TRF DARI BUDI", Amount: 2000000, Type: "CREDIT"},
				},
			},
		},
	}

	out, err := g.Generate(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(out))
	}

	if out[0].Amount != -150000 {
		t.Errorf("debit suggestion amount = %v", out[0].Amount)
	}
	if out[0].Confidence != 0.8 {
		t.Errorf("statement confidence = %v, want fixed 0.8", out[0].Confidence)
	}
	if out[0].Merchant != "INDOMARET" {
		t.Errorf("merchant from prefix = %q", out[0].Merchant)
	}
	if out[0].CategoryName != "Groceries" {
		t.Errorf("category = %q", out[0].CategoryName)
	}
	if out[1].Merchant != "BUDI" {
		t.Errorf("TRF DARI merchant = %q", out[1].Merchant)
	}
	if out[1].SourceType != constants.SourceBankStatement {
		t.Errorf("source = %q", out[1].SourceType)
	}
}

func TestGenerateNoAmountNoMainSuggestion(t *testing.T) {
	g := NewGenerator(&fakeHistory{}, nil)
	in := receiptInput()
	in.Data.Amount = nil
	in.Data.LineItems = nil

	out, err := g.Generate(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("suggestions = %d, want 0 when nothing usable extracted", len(out))
	}
}
