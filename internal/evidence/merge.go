package evidence

import "github.com/facturaIA/docid-service/internal/models"

// MergePages combines the per-page TextEvidence of a multi-page document:
// full texts joined with a blank line, detected-token lists unioned while
// preserving first-occurrence order (a set-based union would lose that
// ordering), and the mean of per-page confidences.
func MergePages(pages []*models.TextEvidence) *models.TextEvidence {
	if len(pages) == 0 {
		return &models.TextEvidence{}
	}
	if len(pages) == 1 {
		return pages[0]
	}

	merged := &models.TextEvidence{}
	var confidenceSum float64
	var texts []string
	var taxIDs, amounts, dates, docNumbers []string

	for _, p := range pages {
		texts = append(texts, p.FullText)
		confidenceSum += p.AverageConfidence
		taxIDs = append(taxIDs, p.DetectedTaxIDs...)
		amounts = append(amounts, p.DetectedAmounts...)
		dates = append(dates, p.DetectedDates...)
		docNumbers = append(docNumbers, p.DetectedDocNumbers...)
	}

	merged.FullText = joinPages(texts)
	merged.AverageConfidence = confidenceSum / float64(len(pages))
	merged.DetectedTaxIDs = dedupPreserveOrder(taxIDs)
	merged.DetectedAmounts = dedupPreserveOrder(amounts)
	merged.DetectedDates = dedupPreserveOrder(dates)
	merged.DetectedDocNumbers = dedupPreserveOrder(docNumbers)
	return merged
}

func joinPages(texts []string) string {
	out := texts[0]
	for _, t := range texts[1:] {
		out += "\n\n" + t
	}
	return out
}
