package extract

import (
	"context"
	"testing"
	"time"

	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

func fixtureRecognizer(text string) Recognizer {
	return RecognizerFunc(func(_ context.Context, _ []byte, _ string) (Recognition, error) {
		return Recognition{Text: text, Pages: 1}, nil
	})
}

const receiptText = `TOKO SUMBER REZEKI
Jl. Sudirman No. 12, Jakarta
Telp 081234567890

02/01/2024 14:32

2 Nasi Goreng  50.000
1 Es Teh Manis  8.000

Subtotal 58.000
PPN (11%) 6.380
TOTAL 64.380

Terima kasih`

func TestReceiptEngineParsesFixture(t *testing.T) {
	e := NewReceiptEngine(fixtureRecognizer(receiptText), nil)
	res, err := e.Extract(context.Background(), []byte{0xFF, 0xD8, 0xFF, 0x00}, "image/jpeg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	m := res.Data.Merchant
	if m == nil {
		t.Fatal("merchant not extracted")
	}
	if m.Name != "TOKO SUMBER REZEKI" {
		t.Errorf("merchant name = %q", m.Name)
	}
	if m.Address == "" {
		t.Error("address marker line not captured")
	}
	if m.Phone == "" {
		t.Error("phone not captured")
	}

	d := res.Data.Date
	if d == nil {
		t.Fatal("date not extracted")
	}
	want := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !d.Date.Equal(want) {
		t.Errorf("date = %v, want %v", d.Date, want)
	}
	if d.Confidence != 0.85 {
		t.Errorf("date confidence = %v", d.Confidence)
	}

	a := res.Data.Amount
	if a == nil {
		t.Fatal("amounts not extracted")
	}
	if a.Total != 64380 {
		t.Errorf("total = %v, want 64380", a.Total)
	}
	if a.Subtotal == nil || *a.Subtotal != 58000 {
		t.Errorf("subtotal = %v, want 58000", a.Subtotal)
	}
	if a.Tax == nil || *a.Tax != 6380 {
		t.Errorf("tax = %v, want 6380", a.Tax)
	}
	if a.Confidence != 0.9 {
		t.Errorf("amount confidence = %v, want 0.9", a.Confidence)
	}

	items := res.Data.LineItems
	if len(items) != 2 {
		t.Fatalf("line items = %d, want 2", len(items))
	}
	if items[0].Description != "Nasi Goreng" || items[0].Quantity != 2 || items[0].TotalPrice != 50000 {
		t.Errorf("item[0] = %+v", items[0])
	}
	if items[0].UnitPrice != 25000 {
		t.Errorf("unit price = %v, want 25000", items[0].UnitPrice)
	}

	if res.Confidence < 0 || res.Confidence > 1 {
		t.Errorf("overall confidence %v out of [0,1]", res.Confidence)
	}
}

func TestReceiptEngineDateFallback(t *testing.T) {
	e := NewReceiptEngine(fixtureRecognizer("WARUNG MAKMUR\nTOTAL 10.000"), nil)
	fixed := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	res, err := e.Extract(context.Background(), []byte("x"), "image/png")
	if err != nil {
		t.Fatal(err)
	}
	d := res.Data.Date
	if d == nil {
		t.Fatal("expected date fallback")
	}
	if !d.Date.Equal(fixed) {
		t.Errorf("fallback date = %v", d.Date)
	}
	if d.Confidence != 0.3 {
		t.Errorf("fallback confidence = %v, want 0.3", d.Confidence)
	}
}

func TestReceiptEngineRejectsEmptyInput(t *testing.T) {
	e := NewReceiptEngine(fixtureRecognizer("irrelevant"), nil)
	if _, err := e.Extract(context.Background(), nil, "image/jpeg"); !common.IsCode(err, common.CodeValidation) {
		t.Errorf("want VALIDATION, got %v", err)
	}
}

func TestReceiptEngineWrapsRecognizerFailure(t *testing.T) {
	boom := RecognizerFunc(func(_ context.Context, _ []byte, _ string) (Recognition, error) {
		return Recognition{}, context.DeadlineExceeded
	})
	e := NewReceiptEngine(boom, nil)
	if _, err := e.Extract(context.Background(), []byte("x"), "image/jpeg"); !common.IsCode(err, common.CodeExtraction) {
		t.Errorf("want EXTRACTION_FAILURE, got %v", err)
	}
}

func TestOverallConfidenceBounds(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"garbage", "@@@@ ???? #### nonsense"},
		{"empty", ""},
		{"full", receiptText},
		{"amounts only", "TOTAL 99.999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewReceiptEngine(fixtureRecognizer(tc.text), nil)
			res, err := e.Extract(context.Background(), []byte("x"), "image/jpeg")
			if err != nil {
				t.Fatal(err)
			}
			if res.Confidence < 0 || res.Confidence > 1 {
				t.Errorf("confidence %v out of [0,1]", res.Confidence)
			}
		})
	}
}

func TestOverallConfidenceDefaultsWhenNothingExtracted(t *testing.T) {
	if got := overallConfidence(ExtractedData{}, "whatever"); got != 0.5 {
		t.Errorf("default confidence = %v, want 0.5", got)
	}
}
