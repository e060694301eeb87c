package output

import (
	"encoding/json"

	"github.com/rpgo/slabtax/internal/domain"
)

// JSONFormatter serializes the comparison as pretty-printed JSON.
// Amounts are emitted as decimal strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
