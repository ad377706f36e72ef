package models

import "time"

// TableCounts holds the row count of every table.
type TableCounts struct {
	Students   int `db:"students" json:"students"`
	Teachers   int `db:"teachers" json:"teachers"`
	Admins     int `db:"admins" json:"admins"`
	Words      int `db:"words" json:"words"`
	Tasks      int `db:"tasks" json:"tasks"`
	Classes    int `db:"classes" json:"classes"`
	WrongBooks int `db:"wrong_books" json:"wrong_books"`
	Scores     int `db:"scores" json:"scores"`
}

// SystemInfo describes the running process.
type SystemInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// SystemMetrics is a lightweight snapshot of process metrics.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	WordsWritten             uint64    `json:"words_written"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// SystemStatus is the admin-facing status report.
type SystemStatus struct {
	Timestamp string        `json:"timestamp"`
	Database  TableCounts   `json:"database"`
	System    SystemInfo    `json:"system"`
	Metrics   SystemMetrics `json:"metrics"`
	Healthy   bool          `json:"healthy"`
}
