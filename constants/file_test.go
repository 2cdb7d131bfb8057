package constants

import "testing"

func TestMIMEAllowed(t *testing.T) {
	cases := []struct {
		docType DocumentType
		mime    string
		want    bool
	}{
		{DocTypeReceipt, "image/jpeg", true},
		{DocTypeReceipt, "application/pdf", true},
		{DocTypeReceipt, "text/plain", false},
		{DocTypeBankStatement, "application/pdf", true},
		{DocTypeBankStatement, "image/jpeg", false},
		{DocTypeOther, " IMAGE/PNG ", true},
	}
	for _, tc := range cases {
		if got := MIMEAllowed(tc.docType, tc.mime); got != tc.want {
			t.Errorf("MIMEAllowed(%s, %q) = %v, want %v", tc.docType, tc.mime, got, tc.want)
		}
	}
}

func TestSignatureMatches(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	pdf := []byte("%PDF-1.7 rest of file")

	if !SignatureMatches("image/jpeg", jpeg) {
		t.Error("jpeg signature must match")
	}
	if !SignatureMatches("application/pdf", pdf) {
		t.Error("pdf signature must match")
	}
	if SignatureMatches("image/jpeg", pdf) {
		t.Error("pdf bytes must not pass as jpeg")
	}
	if SignatureMatches("image/jpeg", []byte{0xFF}) {
		t.Error("truncated data must not match")
	}
	if SignatureMatches("text/plain", []byte("hello")) {
		t.Error("unknown MIME types never match")
	}
}

func TestParseDocumentType(t *testing.T) {
	if dt, ok := ParseDocumentType(" receipt "); !ok || dt != DocTypeReceipt {
		t.Errorf("ParseDocumentType(receipt) = %v, %v", dt, ok)
	}
	if dt, ok := ParseDocumentType("BANK_STATEMENT"); !ok || dt != DocTypeBankStatement {
		t.Errorf("ParseDocumentType(BANK_STATEMENT) = %v, %v", dt, ok)
	}
	if dt, ok := ParseDocumentType("spreadsheet"); ok || dt != DocTypeOther {
		t.Errorf("ParseDocumentType(spreadsheet) = %v, %v, want OTHER fallback", dt, ok)
	}
}

func TestMIMEFromExtensionRoundTrip(t *testing.T) {
	for _, ext := range []string{"jpg", ".JPG", "png", "pdf", "webp"} {
		mime := MIMEFromExtension(ext)
		if mime == "application/octet-stream" {
			t.Errorf("MIMEFromExtension(%q) fell back unexpectedly", ext)
		}
	}
	if got := MIMEFromExtension("exe"); got != "application/octet-stream" {
		t.Errorf("MIMEFromExtension(exe) = %q", got)
	}
}
