package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Catalog is the reference data a fresh installation starts with.
type Catalog struct {
	Stages              []StageSeed `yaml:"stages"`
	Industries          []GroupSeed `yaml:"industries"`
	DealSources         []string    `yaml:"deal_sources"`
	RejectionCategories []GroupSeed `yaml:"rejection_categories"`
}

// StageSeed is one pipeline stage, in board order.
type StageSeed struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
}

// GroupSeed is a named parent with child names: an industry with its
// sub-industries, or a rejection category with its sub-reasons.
type GroupSeed struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children"`
}

// LoadCatalog reads a catalog from a YAML or JSON file. An empty path
// returns DefaultCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	var c Catalog
	if err := cleanenv.ReadConfig(path, &c); err != nil {
		return nil, fmt.Errorf("seeder catalog: read %s: %w", path, err)
	}
	return &c, nil
}

// DefaultCatalog returns the built-in starting taxonomy.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Stages: []StageSeed{
			{Name: "Thesis Check", Color: "#8b5cf6", Description: "15-30 min analyst review"},
			{Name: "Initial Screening", Color: "#3b82f6", Description: "Full deck analysis"},
			{Name: "Intro Call", Color: "#06b6d4", Description: "Analyst takes the call"},
			{Name: "Filter Discussion", Color: "#f59e0b", Description: "Async partner review"},
			{Name: "Filter IC", Color: "#ef4444", Description: "All partners review"},
			{Name: "Due Diligence", Color: "#10b981", Description: "Internal and external DD"},
		},
		Industries: []GroupSeed{
			{Name: "AI"},
			{Name: "Climate"},
			{Name: "Consumer"},
			{Name: "Crypto"},
			{Name: "Data & Analytics"},
			{Name: "Defense"},
			{Name: "Developer Tools"},
			{Name: "FinTech", Children: []string{"B2B Payments", "HR/Payroll"}},
			{Name: "GTM"},
			{Name: "Hardware"},
			{Name: "Healthcare", Children: []string{"Digital Health"}},
			{Name: "Infrastructure", Children: []string{"Cloud Security"}},
			{Name: "Legal"},
			{Name: "Marketplace"},
			{Name: "Operations"},
			{Name: "Productivity"},
			{Name: "Security", Children: []string{"Threat Detection", "Identity Verification"}},
		},
		DealSources: []string{
			"Sequoia Capital",
			"Accel Partners",
			"Matrix Partners",
			"Peak XV Partners",
			"Tiger Global",
			"Blume Ventures",
		},
		RejectionCategories: []GroupSeed{
			{Name: "Founders", Children: []string{
				"Lack of domain expertise", "Solo founder risk", "Weak track record", "Culture/values misalignment",
			}},
			{Name: "Industry", Children: []string{
				"Market too small", "Regulatory risk", "Outside thesis", "Overcrowded market",
			}},
			{Name: "Execution", Children: []string{
				"Poor go-to-market strategy", "Lack of traction", "Scaling concerns", "Burn rate too high",
			}},
			{Name: "Product/Business Model", Children: []string{
				"Weak moat / defensibility", "Unclear unit economics", "Product-market fit not proven", "Too early stage for us",
			}},
		},
	}
}
