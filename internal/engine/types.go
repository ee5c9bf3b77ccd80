package engine

// Severity is the fixed weight class of a single finding.
// Values are the user-facing Portuguese labels so reports serialize
// exactly as the product has always emitted them.
type Severity string

const (
	SeverityCritical Severity = "CRÍTICO"
	SeverityHigh     Severity = "ALTO"
	SeverityMedium   Severity = "MÉDIO"
)

// RiskTier is the overall classification derived from the score.
type RiskTier string

const (
	TierLow      RiskTier = "BAIXO"
	TierMedium   RiskTier = "MÉDIO"
	TierHigh     RiskTier = "ALTO"
	TierCritical RiskTier = "CRÍTICO"
)

// Finding is one triggered risk pattern. Findings are pure output:
// once appended to a report they are never mutated or re-read by the
// engine.
type Finding struct {
	Severity       Severity `json:"tipo"`
	Category       string   `json:"categoria"`
	Description    string   `json:"descricao"`
	Impact         string   `json:"impacto"`
	LegalReference string   `json:"artigo_legal,omitempty"`
	Recommendation string   `json:"recomendacao"`
}

// Report is the engine's sole output. JSON field names match the
// cached payloads written since the first release, so stored reports
// round-trip without re-running the detectors.
type Report struct {
	Score                 int       `json:"score"`
	RiskTier              RiskTier  `json:"nivel_risco"`
	Findings              []Finding `json:"pontos_atencao"`
	TotalFindings         int       `json:"total_clausulas_problematicas"`
	OverallRecommendation string    `json:"recomendacao_geral"`
	AffectedCategories    []string  `json:"categorias_afetadas"`
}
