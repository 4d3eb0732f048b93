// ABOUTME: History database operations
// ABOUTME: One history row per campaign, replaced after every generation

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/mastermind/internal/history"
	"github.com/harper/mastermind/internal/models"
)

// GetHistory returns the stored history for a campaign. A campaign that has
// never generated a week gets a fresh history for its company.
func GetHistory(db *sql.DB, campaignID uuid.UUID, companyName string) (models.History, error) {
	row := db.QueryRow(`SELECT body FROM histories WHERE campaign_id = ?`, campaignID.String())

	var body string
	err := row.Scan(&body)
	if err == sql.ErrNoRows {
		return history.CreateEmpty(companyName), nil
	}
	if err != nil {
		return models.History{}, err
	}

	var h models.History
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		return models.History{}, fmt.Errorf("failed to decode history: %w", err)
	}
	// Stored history for a renamed company is stale by definition.
	return history.ForCompany(h, companyName), nil
}

// SaveHistory upserts the campaign's history row.
func SaveHistory(db *sql.DB, campaignID uuid.UUID, h models.History) error {
	body, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	_, err = db.Exec(`
		INSERT INTO histories (campaign_id, company_name, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(campaign_id) DO UPDATE SET
			company_name = excluded.company_name,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		campaignID.String(), h.CompanyName, string(body), time.Now())
	return err
}

// ResetHistory deletes the campaign's history row.
func ResetHistory(db *sql.DB, campaignID uuid.UUID) error {
	result, err := db.Exec(`DELETE FROM histories WHERE campaign_id = ?`, campaignID.String())
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("no history for campaign %s", campaignID.String()[:8])
	}
	return nil
}
