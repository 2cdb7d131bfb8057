package extract

import "strings"

var qualityKeywords = []string{
	"total", "tanggal", "date", "rp", "saldo", "struk", "receipt", "bank",
}

// textQuality scores raw text on length and keyword presence, in [0.3, 1.0].
func textQuality(txt string) float32 {
	lower := strings.ToLower(txt)
	score := float32(0.3)
	if len(txt) > 100 {
		score += 0.2
	}
	if len(txt) > 400 {
		score += 0.1
	}
	for _, kw := range qualityKeywords {
		if strings.Contains(lower, kw) {
			score += 0.05
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// overallConfidence is the arithmetic mean of the populated sub-field
// confidences together with the text-quality factor. When nothing was
// extracted it defaults to 0.5. The result is always in [0,1].
func overallConfidence(data ExtractedData, rawText string) float32 {
	var sum float32
	var n int

	add := func(c float32) {
		sum += c
		n++
	}

	if data.Merchant != nil {
		add(data.Merchant.Confidence)
	}
	if data.Amount != nil {
		add(data.Amount.Confidence)
	}
	if data.Date != nil {
		add(data.Date.Confidence)
	}
	if len(data.LineItems) > 0 {
		var itemSum float32
		for _, it := range data.LineItems {
			itemSum += it.Confidence
		}
		add(itemSum / float32(len(data.LineItems)))
	}
	if bs := data.BankStatement; bs != nil {
		if len(bs.Transactions) > 0 {
			add(0.9)
		} else {
			add(0.5)
		}
	}

	if n == 0 {
		return 0.5
	}
	add(textQuality(rawText))

	c := sum / float32(n)
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}
