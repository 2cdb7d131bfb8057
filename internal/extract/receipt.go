package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// Ordered date patterns; the first match wins.
var receiptDatePatterns = []struct {
	re     *regexp.Regexp
	layout string
	id     bool // Indonesian month names, translate first
}{
	{regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`), "02/01/2006", false},
	{regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`), "2006-01-02", false},
	{regexp.MustCompile(`\b(\d{2}-\d{2}-\d{4})\b`), "02-01-2006", false},
	{regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Januari|Februari|Maret|April|Mei|Juni|Juli|Agustus|September|Oktober|November|Desember)\s+\d{4})\b`), "2 January 2006", true},
}

var (
	addressMarkers  = []string{"jl.", "jalan", "street", "road"}
	rePhone         = regexp.MustCompile(`(?:\+62|62|0)8\d[\d\s\-]{6,12}\d`)
	reLineItem      = regexp.MustCompile(`^(\d{1,3})\s*[xX]?\s+(\S.*?)\s{2,}((?:Rp\.?\s*)?\d[\d.,]*)\s*$`)
	reLineItemLoose = regexp.MustCompile(`^(\d{1,3})\s+(\S.*?\S)\s+((?:Rp\.?\s*)?\d[\d.,]*)\s*$`)
)

// ReceiptEngine parses OCR text of store receipts into structured fields.
type ReceiptEngine struct {
	rec    Recognizer
	logger *slog.Logger
	now    func() time.Time
}

func NewReceiptEngine(rec Recognizer, logger *slog.Logger) *ReceiptEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptEngine{rec: rec, logger: logger, now: time.Now}
}

func (e *ReceiptEngine) Extract(ctx context.Context, data []byte, mimeType string) (*Result, error) {
	if len(data) == 0 {
		return nil, common.ValidationError("empty document content")
	}
	start := time.Now()

	rec, err := e.rec.Recognize(ctx, data, mimeType)
	if err != nil {
		return nil, common.ExtractionError("recognize text", err)
	}

	lines := splitLines(rec.Text)
	var parsed ExtractedData
	parsed.Merchant = e.parseMerchant(lines)
	parsed.Date = e.parseDate(lines)
	parsed.Amount = e.parseAmounts(lines)
	parsed.LineItems = e.parseLineItems(lines)

	res := &Result{
		RawText:    rec.Text,
		Data:       parsed,
		Confidence: overallConfidence(parsed, rec.Text),
		Engine:     "receipt-heuristic",
		Format:     mimeType,
		Pages:      rec.Pages,
		Duration:   time.Since(start),
	}
	e.logger.Debug("receipt extraction done",
		"confidence", res.Confidence,
		"line_items", len(parsed.LineItems),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// parseMerchant takes the first non-empty line as the name, then scans for
// address markers and phone-like patterns.
func (e *ReceiptEngine) parseMerchant(lines []string) *MerchantInfo {
	m := &MerchantInfo{}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			m.Name = strings.TrimSpace(line)
			break
		}
	}
	if m.Name == "" {
		return nil
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if m.Address == "" {
			for _, marker := range addressMarkers {
				if strings.Contains(lower, marker) {
					m.Address = strings.TrimSpace(line)
					break
				}
			}
		}
		if m.Phone == "" {
			if p := rePhone.FindString(line); p != "" {
				m.Phone = strings.TrimSpace(p)
			}
		}
	}
	m.Confidence = 0.7
	if m.Address != "" {
		m.Confidence += 0.1
	}
	if m.Phone != "" {
		m.Confidence += 0.1
	}
	return m
}

// parseDate tries each pattern in order; no match falls back to the current
// date at low confidence instead of failing.
func (e *ReceiptEngine) parseDate(lines []string) *DateInfo {
	for _, line := range lines {
		for _, p := range receiptDatePatterns {
			match := p.re.FindString(line)
			if match == "" {
				continue
			}
			if p.id {
				match = translateMonths(match)
			}
			if t, err := time.Parse(p.layout, match); err == nil {
				return &DateInfo{Date: t, Confidence: 0.85}
			}
		}
	}
	return &DateInfo{Date: e.now(), Confidence: 0.3}
}

func (e *ReceiptEngine) parseAmounts(lines []string) *AmountInfo {
	a := &AmountInfo{Currency: "IDR"}
	found := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "subtotal"):
			if v, ok := lastAmountIn(line); ok {
				a.Subtotal = &v
				found = true
			}
		case strings.Contains(lower, "total"):
			if v, ok := lastAmountIn(line); ok && a.Total == 0 {
				a.Total = v
				found = true
			}
		case strings.Contains(lower, "tax") || strings.Contains(lower, "ppn") || strings.Contains(lower, "pajak"):
			if v, ok := lastAmountIn(line); ok {
				a.Tax = &v
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	if a.Total > 0 {
		a.Confidence = 0.9
	} else {
		a.Confidence = 0.3
	}
	return a
}

// parseLineItems matches a qty-description-price pattern per line.
// Unit price is derived from total/quantity.
func (e *ReceiptEngine) parseLineItems(lines []string) []LineItem {
	var items []LineItem
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "total") || strings.Contains(lower, "tax") ||
			strings.Contains(lower, "ppn") || strings.Contains(lower, "pajak") {
			continue
		}
		groups := reLineItem.FindStringSubmatch(line)
		if groups == nil {
			groups = reLineItemLoose.FindStringSubmatch(line)
		}
		if groups == nil {
			continue
		}
		qty, ok := parseAmount(groups[1])
		if !ok || qty <= 0 {
			continue
		}
		price, ok := parseAmount(groups[3])
		if !ok || price <= 0 {
			continue
		}
		items = append(items, LineItem{
			Description: strings.TrimSpace(groups[2]),
			Quantity:    qty,
			UnitPrice:   price / qty,
			TotalPrice:  price,
			Confidence:  0.7,
		})
	}
	return items
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, " \t"))
	}
	return lines
}
