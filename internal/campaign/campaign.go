// ABOUTME: Campaign definition loading and validation
// ABOUTME: Parses the YAML file that describes a company's campaign

package campaign

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/mastermind/internal/models"
)

const defaultPostsPerWeek = 3

// Definition models a campaign YAML file.
type Definition struct {
	Name    string `yaml:"name"`
	Company struct {
		Name        string `yaml:"name"`
		Website     string `yaml:"website"`
		Description string `yaml:"description"`
		ICP         string `yaml:"icp"`
	} `yaml:"company"`
	Personas []struct {
		Username            string   `yaml:"username"`
		Background          string   `yaml:"background"`
		Expertise           []string `yaml:"expertise"`
		WritingStyle        string   `yaml:"writing_style"`
		CommunityAffinities []string `yaml:"community_affinities"`
	} `yaml:"personas"`
	Communities  []string `yaml:"communities"`
	Keywords     []string `yaml:"keywords"`
	PostsPerWeek int      `yaml:"posts_per_week"`
}

// Load reads and validates a campaign definition from path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("campaign: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a campaign definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("campaign: parse: %w", err)
	}
	if def.PostsPerWeek == 0 {
		def.PostsPerWeek = defaultPostsPerWeek
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition can drive calendar generation.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("campaign: name is required")
	}
	if strings.TrimSpace(d.Company.Name) == "" {
		return fmt.Errorf("campaign: company.name is required")
	}
	if len(d.Personas) < 2 {
		return fmt.Errorf("campaign: at least 2 personas required, have %d", len(d.Personas))
	}
	seen := make(map[string]bool)
	for i, p := range d.Personas {
		if strings.TrimSpace(p.Username) == "" {
			return fmt.Errorf("campaign: persona %d has no username", i+1)
		}
		if seen[p.Username] {
			return fmt.Errorf("campaign: duplicate persona username %q", p.Username)
		}
		seen[p.Username] = true
	}
	communities := 0
	for _, c := range d.Communities {
		if strings.TrimSpace(c) != "" {
			communities++
		}
	}
	if communities == 0 {
		return fmt.Errorf("campaign: at least one community required")
	}
	if len(d.Keywords) == 0 {
		return fmt.Errorf("campaign: at least one keyword required")
	}
	if d.PostsPerWeek < 1 {
		return fmt.Errorf("campaign: posts_per_week must be at least 1")
	}
	return nil
}

// Input builds the generator input for the week containing weekStart.
// Keyword ids are assigned K1..Kn in file order so they stay stable across
// weekly runs.
func (d *Definition) Input(weekStart time.Time, weekNumber int) models.CalendarInput {
	input := models.CalendarInput{
		Company: models.CompanyInfo{
			Name:        d.Company.Name,
			Website:     d.Company.Website,
			Description: d.Company.Description,
			ICP:         d.Company.ICP,
		},
		Communities:   d.Communities,
		PostsPerWeek:  d.PostsPerWeek,
		WeekStartDate: weekStart,
		WeekNumber:    weekNumber,
	}
	for _, p := range d.Personas {
		input.Personas = append(input.Personas, models.Persona{
			Username:            p.Username,
			Background:          p.Background,
			Expertise:           p.Expertise,
			WritingStyle:        p.WritingStyle,
			CommunityAffinities: p.CommunityAffinities,
		})
	}
	for i, k := range d.Keywords {
		input.Keywords = append(input.Keywords, models.Keyword{
			ID:      fmt.Sprintf("K%d", i+1),
			Keyword: k,
		})
	}
	return input
}
