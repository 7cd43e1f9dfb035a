package configs

import (
	"fmt"
	"strings"
)

// Dataset source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Dataset selects where reports read campaigns from. With the csv source
// Path is parsed on first use; with postgres the latest import is read
// from the store configured by Postgres.
type Dataset struct {
	Source string `env:"SOURCE" envDefault:"csv"`
	Path   string `env:"PATH" envDefault:"marketing_campaign_dataset.csv"`
}

// Kind returns the normalised source kind or an error for unknown values.
func (c Dataset) Kind() (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(c.Source)); s {
	case SourceCSV, SourcePostgres:
		return s, nil
	default:
		return "", fmt.Errorf("unknown dataset source %q", c.Source)
	}
}
