package quota

import (
	"github.com/pytutor/pytutor_service/internal/usage"
)

// minKeyLen is a shape check only; no call is made to the provider, so an
// inspection never consumes quota itself.
const minKeyLen = 10

// DefaultLimit is the assumed monthly free-tier token budget. It is a
// local approximation and does not reflect Google-side billing.
const DefaultLimit = 60000

type Report struct {
	Used    int    `json:"used"`
	Limit   int    `json:"limit"`
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

type Inspector struct {
	ledger *usage.Ledger
	limit  int
}

func NewInspector(ledger *usage.Ledger, limit int) *Inspector {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Inspector{ledger: ledger, limit: limit}
}

// Inspect validates the key's shape and reports the locally tracked usage
// against the configured ceiling.
func (i *Inspector) Inspect(apiKey string) Report {
	if len(apiKey) < minKeyLen {
		return Report{Used: 0, Limit: i.limit, Error: "Invalid API key format"}
	}
	return Report{Used: i.ledger.Used(apiKey), Limit: i.limit, IsValid: true}
}
