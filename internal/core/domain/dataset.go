package domain

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a data-quality diagnostic raised while ingesting one row.
// Rejected issues mean the row was skipped; the others only flag a
// suspicious but usable row (e.g. more clicks than impressions).
type Issue struct {
	Line       int    `json:"line"`
	CampaignID string `json:"campaign_id,omitempty"` // raw cell text
	Column     Field  `json:"column,omitempty"`
	Reason     string `json:"reason"`
	Rejected   bool   `json:"rejected"`
}

// Dataset is an immutable batch of campaigns produced by one import.
type Dataset struct {
	ID        uuid.UUID
	Source    string
	LoadedAt  time.Time
	Campaigns []Campaign
	Issues    []Issue
}

// Summary is the data-quality overview of a Dataset.
type Summary struct {
	DatasetID   uuid.UUID `json:"dataset_id"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`
	Campaigns   int       `json:"campaigns"`
	Rejected    int       `json:"rejected"`
	Flagged     int       `json:"flagged"`
	RejectedIDs []string  `json:"rejected_ids"`
	Issues      []Issue   `json:"issues"`
}

// Summary counts rejected and flagged rows. A row with several issues of
// the same kind is counted once and its ID listed once.
func (d *Dataset) Summary() Summary {
	s := Summary{
		DatasetID:   d.ID,
		Source:      d.Source,
		LoadedAt:    d.LoadedAt,
		Campaigns:   len(d.Campaigns),
		RejectedIDs: []string{},
		Issues:      d.Issues,
	}
	if s.Issues == nil {
		s.Issues = []Issue{}
	}
	rejected := make(map[int]struct{})
	flagged := make(map[int]struct{})
	for _, is := range d.Issues {
		if !is.Rejected {
			flagged[is.Line] = struct{}{}
			continue
		}
		if _, seen := rejected[is.Line]; seen {
			continue
		}
		rejected[is.Line] = struct{}{}
		if is.CampaignID != "" {
			s.RejectedIDs = append(s.RejectedIDs, is.CampaignID)
		}
	}
	s.Rejected = len(rejected)
	s.Flagged = len(flagged)
	return s
}
