package audit

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Auditor records one row per analysis request. Failures are logged
// and swallowed; auditing never blocks an analysis.
type Auditor struct {
	db *sql.DB
}

type AuditEntry struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	FileHash  string    `json:"file_hash"`
	Score     int       `json:"score"`
	RiskTier  string    `json:"risk_tier"`
	CacheHit  bool      `json:"cache_hit"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewAuditor(path string) *Auditor {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Printf("Failed to open audit DB: %v", err)
		return &Auditor{}
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		file_hash TEXT,
		score INTEGER,
		risk_tier TEXT,
		cache_hit INTEGER,
		error TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		log.Printf("Failed to create audit table: %v", err)
	}
	return &Auditor{db: db}
}

func (a *Auditor) Log(filename, fileHash string, score int, riskTier string, cacheHit bool, err error) {
	if a.db == nil {
		return
	}
	var errStr string
	if err != nil {
		errStr = err.Error()
	}
	_, err = a.db.Exec(
		"INSERT INTO audit_log (filename, file_hash, score, risk_tier, cache_hit, error) VALUES (?, ?, ?, ?, ?, ?)",
		filename, fileHash, score, riskTier, cacheHit, errStr,
	)
	if err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}

func (a *Auditor) GetLogs(limit int) ([]AuditEntry, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.Query("SELECT id, filename, file_hash, score, risk_tier, cache_hit, error, timestamp FROM audit_log ORDER BY timestamp DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Filename, &e.FileHash, &e.Score, &e.RiskTier, &e.CacheHit, &e.Error, &e.Timestamp); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a *Auditor) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
