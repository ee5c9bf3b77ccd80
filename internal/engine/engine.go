// Package engine converts raw lease-contract text into a deterministic
// risk report: a battery of independent clause detectors, each worth a
// fixed number of points, aggregated into a 0-100 score and a tier.
//
// The engine is pure and total: no I/O, no shared state, never an
// error. Identical text always yields an identical report, which is
// what makes cached reports reusable without re-scoring.
package engine

import "strings"

// Tier thresholds. Fixed constants: any change shifts the meaning of
// every score already sitting in the cache.
const (
	tierCriticalMin = 70
	tierHighMin     = 45
	tierMediumMin   = 25
	maxScore        = 100
)

const (
	recommendationLow      = "Contrato aparentemente equilibrado. Revisar pontos destacados antes de assinar."
	recommendationMedium   = "⚡ Revisar e negociar pontos destacados para maior segurança jurídica."
	recommendationHigh     = "⚠️ Contrato contém cláusulas desfavoráveis significativas. Negociar antes de assinar."
	recommendationCritical = "⛔ NÃO ASSINAR este contrato sem renegociação URGENTE de cláusulas críticas. Alto risco de prejuízo."
)

// ScoreDocument runs the full detector battery over the contract text
// and returns the assembled report. Empty or whitespace-only input
// yields the zero report; rejecting too-short documents is the
// caller's policy, not the engine's.
func ScoreDocument(text string) Report {
	if strings.TrimSpace(text) == "" {
		return Report{
			RiskTier:              TierLow,
			Findings:              []Finding{},
			OverallRecommendation: recommendationLow,
			AffectedCategories:    []string{},
		}
	}

	// All matching happens on the lowercased copy. Values captured by
	// the detectors come from that same copy, matching the product's
	// historical output.
	lower := strings.ToLower(text)

	score := 0
	findings := make([]Finding, 0, 8)
	for _, d := range battery {
		desc, ok := d.Trigger(lower)
		if !ok {
			continue
		}
		score += d.Points
		findings = append(findings, Finding{
			Severity:       d.Severity,
			Category:       d.Category,
			Description:    desc,
			Impact:         d.Impact,
			LegalReference: d.LegalReference,
			Recommendation: d.Recommendation,
		})
	}

	if score > maxScore {
		score = maxScore
	}

	tier, recommendation := classify(score)
	return Report{
		Score:                 score,
		RiskTier:              tier,
		Findings:              findings,
		TotalFindings:         len(findings),
		OverallRecommendation: recommendation,
		AffectedCategories:    categories(findings),
	}
}

// classify maps a clamped score to its tier. Pure function of the
// score, nothing else.
func classify(score int) (RiskTier, string) {
	switch {
	case score >= tierCriticalMin:
		return TierCritical, recommendationCritical
	case score >= tierHighMin:
		return TierHigh, recommendationHigh
	case score >= tierMediumMin:
		return TierMedium, recommendationMedium
	default:
		return TierLow, recommendationLow
	}
}

// categories collects the distinct category labels in finding order.
func categories(findings []Finding) []string {
	seen := make(map[string]struct{}, len(findings))
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	return out
}
