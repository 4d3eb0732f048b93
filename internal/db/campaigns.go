// ABOUTME: Campaign database operations
// ABOUTME: CRUD functions for the campaigns table

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/mastermind/internal/campaign"
)

// Campaign is a stored campaign definition.
type Campaign struct {
	ID          uuid.UUID
	Name        string
	CompanyName string
	Definition  *campaign.Definition
	CreatedAt   time.Time
	CreatedBy   string
}

// NewCampaign creates a campaign record with generated UUID and timestamp.
func NewCampaign(def *campaign.Definition, createdBy string) *Campaign {
	return &Campaign{
		ID:          uuid.New(),
		Name:        def.Name,
		CompanyName: def.Company.Name,
		Definition:  def,
		CreatedAt:   time.Now(),
		CreatedBy:   createdBy,
	}
}

// CreateCampaign inserts a new campaign into the database.
func CreateCampaign(db *sql.DB, c *Campaign) error {
	body, err := json.Marshal(c.Definition)
	if err != nil {
		return fmt.Errorf("failed to encode campaign definition: %w", err)
	}
	_, err = db.Exec(`
		INSERT INTO campaigns (id, name, company_name, definition, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.Name, c.CompanyName, string(body), c.CreatedAt, c.CreatedBy)
	return err
}

// GetCampaign retrieves a campaign by name, id, or id prefix.
func GetCampaign(db *sql.DB, ref string) (*Campaign, error) {
	row := db.QueryRow(`
		SELECT id, name, company_name, definition, created_at, created_by
		FROM campaigns WHERE name = ? OR id = ? OR id LIKE ?`,
		ref, ref, ref+"%")
	return scanCampaign(row)
}

// ListCampaigns returns all campaigns ordered by creation time.
func ListCampaigns(db *sql.DB) ([]*Campaign, error) {
	rows, err := db.Query(`
		SELECT id, name, company_name, definition, created_at, created_by
		FROM campaigns ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*Campaign
	for rows.Next() {
		var c Campaign
		var id, body string
		if err := rows.Scan(&id, &c.Name, &c.CompanyName, &body, &c.CreatedAt, &c.CreatedBy); err != nil {
			return nil, err
		}
		c.ID, _ = uuid.Parse(id)
		if err := json.Unmarshal([]byte(body), &c.Definition); err != nil {
			return nil, fmt.Errorf("failed to decode campaign %s: %w", c.Name, err)
		}
		campaigns = append(campaigns, &c)
	}
	return campaigns, rows.Err()
}

// DeleteCampaign removes a campaign and, via cascade, its calendars and
// history.
func DeleteCampaign(db *sql.DB, ref string) error {
	c, err := GetCampaign(db, ref)
	if err != nil {
		return err
	}
	_, err = db.Exec(`DELETE FROM campaigns WHERE id = ?`, c.ID.String())
	return err
}

func scanCampaign(row *sql.Row) (*Campaign, error) {
	var c Campaign
	var id, body string
	err := row.Scan(&id, &c.Name, &c.CompanyName, &body, &c.CreatedAt, &c.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("campaign not found")
	}
	if err != nil {
		return nil, err
	}
	c.ID, _ = uuid.Parse(id)
	if err := json.Unmarshal([]byte(body), &c.Definition); err != nil {
		return nil, fmt.Errorf("failed to decode campaign %s: %w", c.Name, err)
	}
	return &c, nil
}
