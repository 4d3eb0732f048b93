// ABOUTME: Tests for campaign database operations
// ABOUTME: Verifies CRUD behavior and cascade deletion

package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/harper/mastermind/internal/campaign"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testDefinition(t *testing.T, name string) *campaign.Definition {
	t.Helper()
	def, err := campaign.Parse([]byte(`
name: ` + name + `
company:
  name: SlideRocket
  website: https://sliderocket.example
  description: AI presentation builder
  icp: startup founders
personas:
  - username: deck_doctor
    background: former consultant
    expertise: [presentations]
    writing_style: direct
    community_affinities: [r/PowerPoint]
  - username: pitch_penny
    background: startup marketer
    expertise: [marketing]
    writing_style: casual
communities:
  - r/PowerPoint
  - r/startups
keywords:
  - best presentation software
  - pitch deck tips
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return def
}

func TestCreateAndGetCampaign(t *testing.T) {
	db := testDB(t)

	c := NewCampaign(testDefinition(t, "launch-week"), "harper@cli")
	if err := CreateCampaign(db, c); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	got, err := GetCampaign(db, "launch-week")
	if err != nil {
		t.Fatalf("GetCampaign by name failed: %v", err)
	}
	if got.ID != c.ID {
		t.Errorf("expected id %s, got %s", c.ID, got.ID)
	}
	if got.CompanyName != "SlideRocket" {
		t.Errorf("expected company SlideRocket, got %s", got.CompanyName)
	}
	if got.CreatedBy != "harper@cli" {
		t.Errorf("expected creator harper@cli, got %s", got.CreatedBy)
	}
	if len(got.Definition.Personas) != 2 {
		t.Errorf("expected 2 personas in stored definition, got %d", len(got.Definition.Personas))
	}
}

func TestGetCampaignByIDPrefix(t *testing.T) {
	db := testDB(t)

	c := NewCampaign(testDefinition(t, "launch-week"), "harper@cli")
	if err := CreateCampaign(db, c); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	got, err := GetCampaign(db, c.ID.String()[:8])
	if err != nil {
		t.Fatalf("GetCampaign by prefix failed: %v", err)
	}
	if got.Name != "launch-week" {
		t.Errorf("expected launch-week, got %s", got.Name)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	db := testDB(t)

	if _, err := GetCampaign(db, "nonexistent"); err == nil {
		t.Error("expected error for missing campaign")
	}
}

func TestCreateCampaignDuplicateName(t *testing.T) {
	db := testDB(t)

	if err := CreateCampaign(db, NewCampaign(testDefinition(t, "launch-week"), "harper@cli")); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if err := CreateCampaign(db, NewCampaign(testDefinition(t, "launch-week"), "harper@cli")); err == nil {
		t.Error("expected unique constraint violation for duplicate name")
	}
}

func TestListCampaigns(t *testing.T) {
	db := testDB(t)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := CreateCampaign(db, NewCampaign(testDefinition(t, name), "harper@cli")); err != nil {
			t.Fatalf("CreateCampaign %s failed: %v", name, err)
		}
	}

	campaigns, err := ListCampaigns(db)
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(campaigns) != 3 {
		t.Fatalf("expected 3 campaigns, got %d", len(campaigns))
	}
}

func TestDeleteCampaignCascades(t *testing.T) {
	db := testDB(t)

	c := NewCampaign(testDefinition(t, "launch-week"), "harper@cli")
	if err := CreateCampaign(db, c); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if err := SaveHistory(db, c.ID, testHistory("SlideRocket")); err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}

	if err := DeleteCampaign(db, "launch-week"); err != nil {
		t.Fatalf("DeleteCampaign failed: %v", err)
	}
	if _, err := GetCampaign(db, "launch-week"); err == nil {
		t.Error("expected campaign to be gone")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM histories`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected history rows to cascade, found %d", count)
	}
}
