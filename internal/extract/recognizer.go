package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer runs OCR over image bytes via tesseract.
type TesseractRecognizer struct {
	languages []string
}

// NewTesseractRecognizer configures OCR languages ("ind+eng" style string).
func NewTesseractRecognizer(languages string) *TesseractRecognizer {
	langs := strings.Split(languages, "+")
	if len(langs) == 0 || langs[0] == "" {
		langs = []string{"eng"}
	}
	return &TesseractRecognizer{languages: langs}
}

func (r *TesseractRecognizer) Recognize(ctx context.Context, data []byte, _ string) (Recognition, error) {
	if err := ctx.Err(); err != nil {
		return Recognition{}, err
	}
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.languages...); err != nil {
		return Recognition{}, fmt.Errorf("set ocr language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return Recognition{}, fmt.Errorf("load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return Recognition{}, fmt.Errorf("ocr: %w", err)
	}
	return Recognition{Text: text, Pages: 1}, nil
}

// PDFTextRecognizer extracts embedded text from PDF bytes.
type PDFTextRecognizer struct{}

func NewPDFTextRecognizer() *PDFTextRecognizer {
	return &PDFTextRecognizer{}
}

func (r *PDFTextRecognizer) Recognize(ctx context.Context, data []byte, _ string) (Recognition, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Recognition{}, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	pages := doc.NumPage()
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return Recognition{}, err
		}
		pageText, err := doc.Text(i)
		if err != nil {
			continue
		}
		if pageText != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}
	return Recognition{Text: strings.TrimSpace(b.String()), Pages: pages}, nil
}

// MIMERecognizer dispatches to the PDF text extractor or the image OCR
// backend based on the declared MIME type.
type MIMERecognizer struct {
	pdf   Recognizer
	image Recognizer
}

func NewMIMERecognizer(pdf, image Recognizer) *MIMERecognizer {
	return &MIMERecognizer{pdf: pdf, image: image}
}

func (r *MIMERecognizer) Recognize(ctx context.Context, data []byte, mimeType string) (Recognition, error) {
	if strings.EqualFold(strings.TrimSpace(mimeType), "application/pdf") {
		return r.pdf.Recognize(ctx, data, mimeType)
	}
	return r.image.Recognize(ctx, data, mimeType)
}
