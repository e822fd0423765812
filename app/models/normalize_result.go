package models

import "time"

// NormalizeResult is the persisted/transmitted shape of a single
// tnorm.Result, mirroring AddressResult (here there is
// no candidate ranking — a normalize call has exactly one output text).
type NormalizeResult struct {
	Text             string    `json:"text"`
	Tokens           string    `json:"tokens,omitempty"`
	Lang             string    `json:"lang"`
	Deterministic    bool      `json:"deterministic"`
	CacheHit         bool      `json:"cache_hit"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}
