package trace

import "time"

// Entry is one captured routing decision. Scores carry the full per-intent
// breakdown so a reader can see why the winner won.
type Entry struct {
	ID                   string            `json:"id"`
	Timestamp            time.Time         `json:"timestamp"`
	Transcript           string            `json:"transcript"`
	Tab                  string            `json:"tab"`
	Intent               string            `json:"intent"`
	HandlerDomain        string            `json:"handlerDomain"`
	Confidence           float64           `json:"confidence"`
	RequiresConfirmation bool              `json:"requiresConfirmation"`
	Scores               []IntentScore     `json:"scores"`
	Slots                map[string]string `json:"slots"`
	Missing              []string          `json:"missing,omitempty"`
	Reasoning            string            `json:"reasoning"`
	Fallback             bool              `json:"fallback"`
	LatencyMS            int64             `json:"latencyMs"`
}

// IntentScore is one row of the score table, after bias.
type IntentScore struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

// Listener receives every recorded entry.
type Listener func(Entry)
