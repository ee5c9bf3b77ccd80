package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neutralBase mentions every clause whose absence would be penalized
// and triggers nothing on its own, so tests can add snippets with
// known point values on top of a zero-score document.
const neutralBase = "o locatário terá direito de preferência na aquisição do imóvel. " +
	"há estacionamento com vagas, vestiário masculino e feminino e rampa de acessibilidade. " +
	"foi realizada vistoria detalhada na entrega das chaves. "

const (
	snippetLatePenalty = "multa por atraso de 30% sobre o valor devido. "          // 20 pts
	snippetSignage     = "é proibida a instalação de placa na fachada. "           // 12 pts
	snippetAsIs        = "o imóvel será entregue no estado atual. "                // 12 pts
	snippetNoIndemnity = "as benfeitorias não darão direito a indenização. "       // 25 pts
	snippetWaiver      = "o locatário renuncia ao direito de renovação. "          // 30 pts
	snippetRemoval     = "o locatário deverá remover as benfeitorias ao final. "   // 20 pts
)

func findByCategory(r Report, category string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func TestScoreDocument_NeutralBaseScoresZero(t *testing.T) {
	r := ScoreDocument(neutralBase)
	assert.Equal(t, 0, r.Score, "findings: %+v", r.Findings)
	assert.Equal(t, TierLow, r.RiskTier)
	assert.Empty(t, r.Findings)
}

func TestScoreDocument_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		r := ScoreDocument(text)
		assert.Equal(t, 0, r.Score)
		assert.Equal(t, TierLow, r.RiskTier)
		assert.Empty(t, r.Findings)
		assert.Empty(t, r.AffectedCategories)
		assert.Equal(t, 0, r.TotalFindings)
	}
}

func TestScoreDocument_Deterministic(t *testing.T) {
	text := neutralBase + snippetWaiver + snippetLatePenalty + "o prazo de locação é de 24 meses. "
	first := ScoreDocument(text)
	second := ScoreDocument(text)
	require.Equal(t, first, second)
}

func TestScoreDocument_TierBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		score    int
		tier     RiskTier
	}{
		{"raw 24 is low", neutralBase + snippetSignage + snippetAsIs, 24, TierLow},
		{"raw 25 is medium", neutralBase + snippetNoIndemnity, 25, TierMedium},
		{"raw 44 is medium", neutralBase + snippetLatePenalty + snippetSignage + snippetAsIs, 44, TierMedium},
		{"raw 45 is high", neutralBase + snippetNoIndemnity + snippetLatePenalty, 45, TierHigh},
		{"raw 69 is high", neutralBase + snippetNoIndemnity + snippetLatePenalty + snippetSignage + snippetAsIs, 69, TierHigh},
		{"raw 70 is critical", neutralBase + snippetWaiver + snippetLatePenalty + snippetRemoval, 70, TierCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreDocument(tt.text)
			assert.Equal(t, tt.score, r.Score, "findings: %+v", r.Findings)
			assert.Equal(t, tt.tier, r.RiskTier)
		})
	}
}

func TestScoreDocument_ClampsAtHundred(t *testing.T) {
	// A bare waiver sentence: the waiver itself (30) plus the five
	// absence checks (20+15+12+18+15) put the raw sum at 110.
	r := ScoreDocument(snippetWaiver)
	assert.Equal(t, 100, r.Score)
	assert.Equal(t, TierCritical, r.RiskTier)
	assert.GreaterOrEqual(t, len(r.Findings), 6)
}

func TestScoreDocument_FirstMatchOnly(t *testing.T) {
	text := neutralBase + "prazo de 3 anos de vigência, prorrogável por novo prazo de 10 anos. "
	r := ScoreDocument(text)

	fs := findByCategory(r, "Prazo Contratual")
	require.Len(t, fs, 1)
	// First numeric match wins; the longer second term is ignored. The
	// captured unit is "ano" even when the text says "anos", matching
	// the shipped interpolation behavior.
	assert.Contains(t, fs[0].Description, "3 ano")
	assert.NotContains(t, fs[0].Description, "10")
}

func TestScoreDocument_SingleFirePerDetector(t *testing.T) {
	text := neutralBase + snippetWaiver + snippetWaiver
	r := ScoreDocument(text)

	fs := findByCategory(r, "Direito à Renovação")
	assert.Len(t, fs, 1)
	assert.Equal(t, 30, r.Score)
}

func TestScoreDocument_AffectedCategories(t *testing.T) {
	text := neutralBase + snippetWaiver + snippetLatePenalty + snippetAsIs
	r := ScoreDocument(text)

	want := map[string]struct{}{}
	for _, f := range r.Findings {
		want[f.Category] = struct{}{}
	}
	assert.Len(t, r.AffectedCategories, len(want))
	for _, c := range r.AffectedCategories {
		_, ok := want[c]
		assert.True(t, ok, "category %q not present in findings", c)
	}
}

func TestScoreDocument_EndToEndScenario(t *testing.T) {
	// A 24-month term, a 12-rent termination penalty, and no mention
	// of accessibility; everything else neutralized.
	text := "o locatário terá direito de preferência na aquisição do imóvel. " +
		"há estacionamento com vagas e vestiário masculino. " +
		"foi realizada vistoria na entrega das chaves. " +
		"o prazo de locação é de 24 meses. " +
		"multa rescisória correspondente a 12 aluguéis. "
	r := ScoreDocument(text)

	require.Len(t, findByCategory(r, "Prazo Contratual"), 1)
	require.Len(t, findByCategory(r, "Multa Rescisória"), 1)
	require.Len(t, findByCategory(r, "Acessibilidade"), 1)
	assert.Equal(t, 25+30+18, r.Score)
	assert.Equal(t, TierCritical, r.RiskTier)
	assert.Equal(t, len(r.Findings), r.TotalFindings)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	text := neutralBase + snippetWaiver + "o prazo de locação é de 24 meses. "
	original := ScoreDocument(text)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"nivel_risco"`))
	assert.True(t, strings.Contains(string(data), `"pontos_atencao"`))

	var restored Report
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestClassify_Recommendations(t *testing.T) {
	tier, rec := classify(0)
	assert.Equal(t, TierLow, tier)
	assert.Equal(t, recommendationLow, rec)

	tier, rec = classify(100)
	assert.Equal(t, TierCritical, tier)
	assert.Equal(t, recommendationCritical, rec)
}
