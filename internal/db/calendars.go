// ABOUTME: Calendar database operations
// ABOUTME: Stores generated weeks verbatim as JSON alongside indexed columns

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harper/mastermind/internal/models"
)

// CalendarRecord wraps a generated calendar with its storage metadata.
type CalendarRecord struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Calendar   models.Calendar
	CreatedAt  time.Time
	CreatedBy  string
}

// NewCalendarRecord creates a record with generated UUID and timestamp.
func NewCalendarRecord(campaignID uuid.UUID, cal models.Calendar, createdBy string) *CalendarRecord {
	return &CalendarRecord{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Calendar:   cal,
		CreatedAt:  time.Now(),
		CreatedBy:  createdBy,
	}
}

// CreateCalendar inserts a calendar record. The calendar body is stored
// verbatim; nothing downstream ever rewrites it.
func CreateCalendar(db *sql.DB, rec *CalendarRecord) error {
	body, err := json.Marshal(rec.Calendar)
	if err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	_, err = db.Exec(`
		INSERT INTO calendars (id, campaign_id, week_number, week_start, body, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.CampaignID.String(), rec.Calendar.WeekNumber,
		rec.Calendar.WeekStartDate, string(body), rec.CreatedAt, rec.CreatedBy)
	return err
}

// GetCalendar retrieves a calendar record by id (supports prefix matching).
func GetCalendar(db *sql.DB, id string) (*CalendarRecord, error) {
	row := db.QueryRow(`
		SELECT id, campaign_id, body, created_at, created_by
		FROM calendars WHERE id = ? OR id LIKE ?`, id, id+"%")

	var rec CalendarRecord
	var recID, campaignID, body string
	err := row.Scan(&recID, &campaignID, &body, &rec.CreatedAt, &rec.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("calendar not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	rec.ID, _ = uuid.Parse(recID)
	rec.CampaignID, _ = uuid.Parse(campaignID)
	if err := json.Unmarshal([]byte(body), &rec.Calendar); err != nil {
		return nil, fmt.Errorf("failed to decode calendar %s: %w", id, err)
	}
	return &rec, nil
}

// ListCalendars returns all calendars for a campaign, oldest week first.
func ListCalendars(db *sql.DB, campaignID string) ([]*CalendarRecord, error) {
	rows, err := db.Query(`
		SELECT id, campaign_id, body, created_at, created_by
		FROM calendars WHERE campaign_id = ? OR campaign_id LIKE ?
		ORDER BY week_number ASC, created_at ASC`, campaignID, campaignID+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*CalendarRecord
	for rows.Next() {
		var rec CalendarRecord
		var recID, cID, body string
		if err := rows.Scan(&recID, &cID, &body, &rec.CreatedAt, &rec.CreatedBy); err != nil {
			return nil, err
		}
		rec.ID, _ = uuid.Parse(recID)
		rec.CampaignID, _ = uuid.Parse(cID)
		if err := json.Unmarshal([]byte(body), &rec.Calendar); err != nil {
			return nil, fmt.Errorf("failed to decode calendar %s: %w", recID, err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
