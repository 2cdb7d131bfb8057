package extract

import (
	"context"
	"testing"
	"time"

	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

const statementText = `BANK CENTRAL ASIA
REKENING TAHAPAN
No. Rekening : 1234567890
Periode : 1 Januari 2024 - 31 Januari 2024

Tanggal  Keterangan  Mutasi  Saldo
01/01  SALDO AWAL  0 CR  5.000.000
03/01  BELANJA INDOMARET REF:ABC123  150.000 DB  4.850.000
10/01  TRF DARI BUDI  2.000.000 CR  6.850.000
15/01  BAYAR PLN JANUARI  350.000 DB  6.500.000

Saldo Akhir  6.500.000`

func TestBankStatementEngineParsesFixture(t *testing.T) {
	e := NewBankStatementEngine(fixtureRecognizer(statementText), nil)
	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	bs := res.Data.BankStatement
	if bs == nil {
		t.Fatal("bank statement info missing")
	}
	if bs.AccountNumber != "1234567890" {
		t.Errorf("account number = %q", bs.AccountNumber)
	}
	if bs.BankName != "BANK CENTRAL ASIA" {
		t.Errorf("bank name = %q", bs.BankName)
	}
	if bs.PeriodStart == nil || bs.PeriodEnd == nil {
		t.Fatal("period not parsed")
	}
	if bs.PeriodStart.Month() != time.January || bs.PeriodEnd.Day() != 31 {
		t.Errorf("period = %v .. %v", bs.PeriodStart, bs.PeriodEnd)
	}

	rows := bs.Transactions
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	belanja := rows[1]
	if belanja.Amount != -150000 {
		t.Errorf("debit row amount = %v, want -150000", belanja.Amount)
	}
	if belanja.Type != "DEBIT" {
		t.Errorf("debit row type = %q", belanja.Type)
	}
	if belanja.Balance != 4850000 {
		t.Errorf("debit row balance = %v", belanja.Balance)
	}
	if belanja.Reference != "ABC123" {
		t.Errorf("reference = %q", belanja.Reference)
	}
	if belanja.Date.Day() != 3 || belanja.Date.Year() != 2024 {
		t.Errorf("row date = %v", belanja.Date)
	}

	trf := rows[2]
	if trf.Amount != 2000000 || trf.Type != "CREDIT" {
		t.Errorf("credit row = %+v", trf)
	}

	// footer row must not be parsed as a transaction
	for _, r := range rows {
		if r.Description == "Saldo Akhir" {
			t.Error("footer parsed as transaction row")
		}
	}

	if res.Confidence < 0 || res.Confidence > 1 {
		t.Errorf("confidence %v out of [0,1]", res.Confidence)
	}
}

func TestBankStatementEngineHandlesRowsWithoutHeader(t *testing.T) {
	e := NewBankStatementEngine(fixtureRecognizer("BANK MANDIRI\n03/01 BELANJA 150.000 DB 1.000.000"), nil)
	res, err := e.Extract(context.Background(), []byte("x"), "application/pdf")
	if err != nil {
		t.Fatal(err)
	}
	// no header line detected -> no rows, degraded confidence, no failure
	if got := len(res.Data.BankStatement.Transactions); got != 0 {
		t.Errorf("rows without header = %d, want 0", got)
	}
}

func TestBankStatementEngineRejectsEmptyInput(t *testing.T) {
	e := NewBankStatementEngine(fixtureRecognizer("x"), nil)
	if _, err := e.Extract(context.Background(), nil, "application/pdf"); !common.IsCode(err, common.CodeValidation) {
		t.Errorf("want VALIDATION, got %v", err)
	}
}

func TestParseAmountFormats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"Rp 15.000", 15000, true},
		{"Rp. 1.234.567,89", 1234567.89, true},
		{"1,234,567.89", 1234567.89, true},
		{"1234,56", 1234.56, true},
		{"15000", 15000, true},
		{"-250.000", -250000, true},
		{"no numbers here", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("parseAmount(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
