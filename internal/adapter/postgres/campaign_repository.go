package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaign-analytics/internal/core/domain"
)

// ErrNoDataset is returned by LoadDataset when nothing has been imported.
var ErrNoDataset = errors.New("no dataset imported")

// CampaignRepository implements port.CampaignSource and port.CampaignStore
// on top of pgxpool. Only the most recent import is kept.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const insertCampaign = `INSERT INTO campaigns
    (batch_id, ordinal, campaign_id, company, campaign_type, target_audience, duration,
     channel_used, conversion_rate, acquisition_cost, roi, location, date, clicks,
     impressions, engagement_score, customer_segment)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::text::numeric,$10::text::numeric,$11::text::numeric,$12,$13,$14,$15,$16,$17)`

const insertIssue = `INSERT INTO import_issues
    (batch_id, ordinal, line, campaign_id, column_name, reason, rejected)
VALUES ($1,$2,$3,$4,$5,$6,$7)`

// SaveDataset replaces the stored dataset with ds in one serializable
// transaction. Campaign order is preserved through the ordinal column.
func (r *CampaignRepository) SaveDataset(ctx context.Context, ds *domain.Dataset) (err error) {
	if ds == nil {
		return errors.New("save dataset: nil dataset")
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// issues and campaigns go with their batch
	if _, err = tx.Exec(ctx, `DELETE FROM import_batches`); err != nil {
		return fmt.Errorf("clear previous import: %w", err)
	}

	id := ds.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	loadedAt := ds.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now().UTC()
	}
	_, err = tx.Exec(ctx, `INSERT INTO import_batches (id, source, loaded_at) VALUES ($1,$2,$3)`, id, ds.Source, loadedAt)
	if err != nil {
		return fmt.Errorf("insert import batch: %w", err)
	}

	batch := &pgx.Batch{}
	for i, c := range ds.Campaigns {
		batch.Queue(insertCampaign,
			id, i, c.ID, c.Company, c.CampaignType, c.TargetAudience, c.Duration,
			c.ChannelUsed, c.ConversionRate.String(), c.AcquisitionCost.String(), c.ROI.String(),
			c.Location, c.Date, c.Clicks, c.Impressions, c.EngagementScore, c.CustomerSegment,
		)
	}
	for i, is := range ds.Issues {
		batch.Queue(insertIssue, id, i, is.Line, is.CampaignID, string(is.Column), is.Reason, is.Rejected)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert campaigns: %w", err)
	}
	return nil
}

// LoadDataset returns the latest import with campaigns in ingestion order.
func (r *CampaignRepository) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}
	err := r.pool.QueryRow(ctx, `SELECT id, source, loaded_at FROM import_batches ORDER BY imported_at DESC LIMIT 1`).
		Scan(&ds.ID, &ds.Source, &ds.LoadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoDataset
	}
	if err != nil {
		return nil, fmt.Errorf("select import batch: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT
            campaign_id,
            company,
            campaign_type,
            target_audience,
            duration,
            channel_used,
            conversion_rate::text,
            acquisition_cost::text,
            roi::text,
            location,
            date,
            clicks,
            impressions,
            engagement_score,
            customer_segment
        FROM campaigns
        WHERE batch_id = $1
        ORDER BY ordinal`, ds.ID)
	if err != nil {
		return nil, fmt.Errorf("select campaigns: %w", err)
	}
	ds.Campaigns, err = pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
        SELECT line, campaign_id, column_name, reason, rejected
        FROM import_issues
        WHERE batch_id = $1
        ORDER BY ordinal`, ds.ID)
	if err != nil {
		return nil, fmt.Errorf("select import issues: %w", err)
	}
	ds.Issues, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Issue, error) {
		var is domain.Issue
		var column string
		err := row.Scan(&is.Line, &is.CampaignID, &column, &is.Reason, &is.Rejected)
		is.Column = domain.Field(column)
		return is, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan import issues: %w", err)
	}
	return ds, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c              domain.Campaign
		rate, cost, ri string
	)
	err := row.Scan(
		&c.ID,
		&c.Company,
		&c.CampaignType,
		&c.TargetAudience,
		&c.Duration,
		&c.ChannelUsed,
		&rate,
		&cost,
		&ri,
		&c.Location,
		&c.Date,
		&c.Clicks,
		&c.Impressions,
		&c.EngagementScore,
		&c.CustomerSegment,
	)
	if err != nil {
		return c, err
	}
	if c.ConversionRate, err = decimal.NewFromString(rate); err != nil {
		return c, err
	}
	if c.AcquisitionCost, err = decimal.NewFromString(cost); err != nil {
		return c, err
	}
	c.ROI, err = decimal.NewFromString(ri)
	c.Date = c.Date.UTC()
	return c, err
}
