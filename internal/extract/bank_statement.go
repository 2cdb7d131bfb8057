package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

// Known Indonesian bank names, matched against the first statement lines.
var knownBankNames = []string{
	"BANK CENTRAL ASIA", "BCA",
	"BANK MANDIRI", "MANDIRI",
	"BANK NEGARA INDONESIA", "BNI",
	"BANK RAKYAT INDONESIA", "BRI",
	"CIMB NIAGA",
	"BANK DANAMON", "DANAMON",
	"PERMATA BANK", "PERMATA",
	"BANK TABUNGAN NEGARA", "BTN",
	"BANK SYARIAH INDONESIA", "BSI",
}

var (
	reAccountNumber = regexp.MustCompile(`(?i)(?:no\.?\s*rekening|nomor\s*rekening|account\s*(?:number|no)\.?)\s*[:.]?\s*([0-9][0-9\-]{5,19})`)
	rePeriod        = regexp.MustCompile(`(?i)(?:periode|period)\s*[:.]?\s*(\d{1,2}\s+\w+\s+\d{4})\s*(?:-|s/d|s\.d\.|to|sampai)\s*(\d{1,2}\s+\w+\s+\d{4})`)
	reStatementRow  = regexp.MustCompile(`^(\d{2}/\d{2}(?:/\d{2,4})?)\s+(.+?)\s+((?:Rp\.?\s*)?\d[\d.,]*)\s*(DB|CR|D|K)\s+((?:Rp\.?\s*)?\d[\d.,]*)\s*$`)
	reReference     = regexp.MustCompile(`(?i)\bref[:.\s]*([A-Z0-9/-]{4,20})\b`)
)

var statementFooterMarkers = []string{
	"saldo akhir", "closing balance", "total mutasi", "total debit", "total kredit",
}

// BankStatementEngine parses PDF bank statements into account metadata and
// signed transaction rows.
type BankStatementEngine struct {
	rec    Recognizer
	logger *slog.Logger
	now    func() time.Time
}

func NewBankStatementEngine(rec Recognizer, logger *slog.Logger) *BankStatementEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &BankStatementEngine{rec: rec, logger: logger, now: time.Now}
}

func (e *BankStatementEngine) Extract(ctx context.Context, data []byte, mimeType string) (*Result, error) {
	if len(data) == 0 {
		return nil, common.ValidationError("empty document content")
	}
	start := time.Now()

	rec, err := e.rec.Recognize(ctx, data, mimeType)
	if err != nil {
		return nil, common.ExtractionError("recognize text", err)
	}

	lines := splitLines(rec.Text)
	info := &BankStatementInfo{
		AccountNumber: parseAccountNumber(lines),
		BankName:      parseBankName(lines),
	}
	info.PeriodStart, info.PeriodEnd = parsePeriod(lines)
	info.Transactions = e.parseRows(lines, info.PeriodStart)

	parsed := ExtractedData{BankStatement: info}
	res := &Result{
		RawText:    rec.Text,
		Data:       parsed,
		Confidence: overallConfidence(parsed, rec.Text),
		Engine:     "bank-statement-heuristic",
		Format:     mimeType,
		Pages:      rec.Pages,
		Duration:   time.Since(start),
	}
	e.logger.Debug("bank statement extraction done",
		"bank", info.BankName,
		"rows", len(info.Transactions),
		"confidence", res.Confidence,
	)
	return res, nil
}

func parseAccountNumber(lines []string) string {
	for _, line := range lines {
		if g := reAccountNumber.FindStringSubmatch(line); g != nil {
			return g[1]
		}
	}
	return ""
}

// parseBankName matches the fixed bank list against the first ~10 lines.
func parseBankName(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		upper := strings.ToUpper(lines[i])
		for _, name := range knownBankNames {
			if strings.Contains(upper, name) {
				return name
			}
		}
	}
	return ""
}

func parsePeriod(lines []string) (*time.Time, *time.Time) {
	for _, line := range lines {
		g := rePeriod.FindStringSubmatch(line)
		if g == nil {
			continue
		}
		from, err1 := time.Parse("2 January 2006", translateMonths(g[1]))
		to, err2 := time.Parse("2 January 2006", translateMonths(g[2]))
		if err1 != nil || err2 != nil {
			continue
		}
		return &from, &to
	}
	return nil, nil
}

// parseRows reads transaction rows between the detected header line and the
// first summary/footer line. Debit rows get a negative amount.
func (e *BankStatementEngine) parseRows(lines []string, periodStart *time.Time) []BankStatementTransaction {
	inTable := false
	year := e.now().Year()
	if periodStart != nil {
		year = periodStart.Year()
	}

	var rows []BankStatementTransaction
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !inTable {
			if isStatementHeader(lower) {
				inTable = true
			}
			continue
		}
		if isStatementFooter(lower) {
			break
		}

		g := reStatementRow.FindStringSubmatch(strings.TrimSpace(line))
		if g == nil {
			continue
		}
		date, ok := parseRowDate(g[1], year)
		if !ok {
			continue
		}
		amount, ok := parseAmount(g[3])
		if !ok {
			continue
		}
		balance, _ := parseAmount(g[5])

		typ := "CREDIT"
		if g[4] == "DB" || g[4] == "D" {
			typ = "DEBIT"
			amount = -amount
		}

		desc := strings.TrimSpace(g[2])
		ref := ""
		if rg := reReference.FindStringSubmatch(desc); rg != nil {
			ref = rg[1]
		}

		rows = append(rows, BankStatementTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Balance:     balance,
			Type:        typ,
			Reference:   ref,
		})
	}
	return rows
}

func isStatementHeader(lower string) bool {
	return (strings.Contains(lower, "tanggal") && strings.Contains(lower, "keterangan")) ||
		(strings.Contains(lower, "date") && strings.Contains(lower, "description"))
}

func isStatementFooter(lower string) bool {
	for _, marker := range statementFooterMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseRowDate reads dd/mm or dd/mm/yy(yy); two-field dates borrow the
// statement period's year.
func parseRowDate(s string, year int) (time.Time, bool) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 2:
		t, err := time.Parse("02/01/2006", s+"/"+strconv.Itoa(year))
		return t, err == nil
	case 3:
		layout := "02/01/2006"
		if len(parts[2]) == 2 {
			layout = "02/01/06"
		}
		t, err := time.Parse(layout, s)
		return t, err == nil
	}
	return time.Time{}, false
}
