package models

import "time"

// ServerStatsResponse contains runtime statistics.
type ServerStatsResponse struct {
	Uptime        string                `json:"uptime"`
	UptimeSeconds int64                 `json:"uptime_seconds"`
	StartTime     time.Time             `json:"start_time"`
	GoRoutines    int                   `json:"goroutines"`
	MemoryAllocMB float64               `json:"memory_alloc_mb"`
	NumCPU        int                   `json:"num_cpu"`
	TokenSet      bool                  `json:"token_set"`
	SystemMemory  *SystemMemoryResponse `json:"system_memory,omitempty"`
}

// SystemMemoryResponse contains host memory figures.
type SystemMemoryResponse struct {
	TotalMB     float64 `json:"total_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}
