// Package service runs the full analysis pipeline: validate the
// upload, extract text, score it, attach the optional narrative and
// persist the result for future cache hits.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avsouza/leaseguard/internal/audit"
	"github.com/avsouza/leaseguard/internal/config"
	"github.com/avsouza/leaseguard/internal/engine"
	"github.com/avsouza/leaseguard/internal/extract"
	"github.com/avsouza/leaseguard/internal/store"
)

// Placeholder narrative used whenever no Gemini key is configured.
const narrativeUnavailable = "API de IA não configurada."

var (
	ErrMissingFilename  = errors.New("Arquivo enviado sem nome.")
	ErrInsufficientText = errors.New("Texto extraído insuficiente. Verifique se o arquivo não é uma imagem escaneada.")
)

// FileTooLargeError carries the configured limit so handlers can show
// it to the client.
type FileTooLargeError struct {
	LimitMB int
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("Arquivo excede o limite de %dMB.", e.LimitMB)
}

// Narrator produces the legal narrative. Satisfied by llm.Client.
type Narrator interface {
	Configured() bool
	Analyze(ctx context.Context, text string) (string, error)
}

// Archiver stores a copy of the raw upload. Satisfied by archive.Archive.
type Archiver interface {
	Put(ctx context.Context, fileHash, filename string, data []byte) error
}

// Result is the analysis response envelope. Field names match the API
// contract consumed by the frontend.
type Result struct {
	Success       bool             `json:"sucesso"`
	Filename      string           `json:"nomeArquivo"`
	TextPreview   string           `json:"textoExtraido"`
	RiskScore     int              `json:"scoreRisco"`
	RiskTier      engine.RiskTier  `json:"nivelRisco"`
	Findings      []engine.Finding `json:"pontosAtencao"`
	TotalFindings int              `json:"totalClausulasProblem"`
	Narrative     string           `json:"analiseIA"`
	CacheHit      bool             `json:"cacheHit,omitempty"`
}

type Analyzer struct {
	upload    config.UploadConfig
	extractor extract.Extractor
	narrator  Narrator
	cache     *store.Cache
	archive   Archiver
	auditor   *audit.Auditor
}

func NewAnalyzer(upload config.UploadConfig, extractor extract.Extractor, narrator Narrator, cache *store.Cache, archive Archiver, auditor *audit.Auditor) *Analyzer {
	return &Analyzer{
		upload:    upload,
		extractor: extractor,
		narrator:  narrator,
		cache:     cache,
		archive:   archive,
		auditor:   auditor,
	}
}

// AnalyzeUpload runs the pipeline over one uploaded file. With forceAI
// set, a cached entry still re-runs the narrative but reuses the
// cached rule report instead of re-scoring.
func (a *Analyzer) AnalyzeUpload(ctx context.Context, filename string, data []byte, forceAI bool) (*Result, error) {
	if filename == "" {
		return nil, ErrMissingFilename
	}
	if !a.allowedExt(filename) {
		return nil, extract.ErrUnsupportedFormat
	}
	maxBytes := int64(a.upload.MaxMB * 1024 * 1024)
	if int64(len(data)) > maxBytes {
		return nil, &FileTooLargeError{LimitMB: int(a.upload.MaxMB)}
	}

	sum := sha256.Sum256(data)
	fileHash := hex.EncodeToString(sum[:])

	cached, err := a.cache.Get(ctx, fileHash)
	if err != nil {
		log.Printf("cache lookup failed: %v", err)
	}
	if cached != nil && !forceAI {
		res := resultFrom(filename, cached.TextPreview, cached.RuleReport, cached.Narrative)
		res.CacheHit = true
		a.auditLog(filename, fileHash, &res.RiskScore, string(res.RiskTier), true, nil)
		return res, nil
	}

	text, err := a.extractor.Extract(filename, data)
	if err != nil {
		a.auditLog(filename, fileHash, nil, "", false, err)
		return nil, err
	}
	if len(strings.TrimSpace(text)) < a.upload.MinTextLen {
		a.auditLog(filename, fileHash, nil, "", false, ErrInsufficientText)
		return nil, ErrInsufficientText
	}

	// A forceAI re-run keeps the cached rule report; the battery is
	// deterministic so re-scoring would only burn CPU.
	var report engine.Report
	if cached != nil && forceAI {
		report = cached.RuleReport
	} else {
		report = engine.ScoreDocument(text)
	}

	narrative := narrativeUnavailable
	if a.narrator != nil && a.narrator.Configured() {
		out, err := a.narrator.Analyze(ctx, text)
		if err != nil {
			narrative = fmt.Sprintf("❌ **Erro na análise com Gemini:** %v", err)
		} else {
			narrative = out
		}
	}

	preview := previewOf(text, a.upload.PreviewLen)

	if err := a.cache.Put(ctx, store.Entry{
		FileHash:    fileHash,
		Filename:    filename,
		TextPreview: preview,
		RuleReport:  report,
		Narrative:   narrative,
	}); err != nil {
		log.Printf("cache write failed: %v", err)
	}

	if a.archive != nil {
		if err := a.archive.Put(ctx, fileHash, filename, data); err != nil {
			log.Printf("archive write failed: %v", err)
		}
	}

	res := resultFrom(filename, preview, report, narrative)
	a.auditLog(filename, fileHash, &res.RiskScore, string(res.RiskTier), false, nil)
	return res, nil
}

// AnalyzeText scores raw text directly, bypassing upload validation
// and the cache. Used by the MCP tools and the CLI.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, withAI bool) (*Result, error) {
	report := engine.ScoreDocument(text)

	narrative := narrativeUnavailable
	if withAI && a.narrator != nil && a.narrator.Configured() {
		out, err := a.narrator.Analyze(ctx, text)
		if err != nil {
			narrative = fmt.Sprintf("❌ **Erro na análise com Gemini:** %v", err)
		} else {
			narrative = out
		}
	}

	return resultFrom("", previewOf(text, a.upload.PreviewLen), report, narrative), nil
}

// Recent exposes the cache history for the listing endpoint.
func (a *Analyzer) Recent(ctx context.Context, limit int) ([]store.Entry, error) {
	return a.cache.Recent(ctx, limit)
}

func (a *Analyzer) allowedExt(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx:])
	for _, allowed := range a.upload.AllowedExts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (a *Analyzer) auditLog(filename, fileHash string, score *int, tier string, cacheHit bool, err error) {
	if a.auditor == nil {
		return
	}
	s := 0
	if score != nil {
		s = *score
	}
	a.auditor.Log(filename, fileHash, s, tier, cacheHit, err)
}

func resultFrom(filename, preview string, report engine.Report, narrative string) *Result {
	if narrative == "" {
		narrative = narrativeUnavailable
	}
	return &Result{
		Success:       true,
		Filename:      filename,
		TextPreview:   preview,
		RiskScore:     report.Score,
		RiskTier:      report.RiskTier,
		Findings:      report.Findings,
		TotalFindings: report.TotalFindings,
		Narrative:     narrative,
	}
}

func previewOf(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
