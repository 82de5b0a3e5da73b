package document

import "github.com/venture-tools/plan-atlas/pkg/models/domain"

// DefaultTemplate returns the empty business-plan dossier every new
// document starts from. Section and field keys are stable: stored
// values are overlaid onto this structure by key at load time, so keys
// must never be reused for a different meaning.
func DefaultTemplate() domain.Document {
	return domain.Document{
		Name: "Business plan",
		Sections: []domain.DocSection{
			{
				Key:   "presentation",
				Title: "Presentation",
				Fields: []domain.DocField{
					{Key: "founders", Label: "Founders and background", Multiline: true},
					{Key: "project_summary", Label: "Project summary", Multiline: true},
					{Key: "legal_form", Label: "Legal form"},
					{Key: "location", Label: "Location"},
					{Key: "timeline", Label: "Key milestones", Multiline: true},
				},
			},
			{
				Key:   "market",
				Title: "Market analysis",
				Fields: []domain.DocField{
					{Key: "target_customers", Label: "Target customers", Multiline: true},
					{Key: "market_size", Label: "Market size and trends", Multiline: true},
					{Key: "regulation", Label: "Regulatory context", Multiline: true},
				},
				Tables: []domain.DocTable{
					{
						Key:     "targets",
						Title:   "Target segments",
						Columns: []string{"Segment", "Benefits"},
						Rows:    [][]string{{"", ""}},
					},
					{
						Key:     "swot",
						Title:   "SWOT",
						Columns: []string{"Strengths", "Weaknesses", "Opportunities", "Threats"},
						Rows:    [][]string{{"", "", "", ""}},
					},
					{
						Key:     "competitors",
						Title:   "Competitors",
						Columns: []string{"Name", "Positioning", "Pricing", "Strengths", "Weaknesses"},
						Rows:    [][]string{{"", "", "", "", ""}},
					},
				},
			},
			{
				Key:   "canvas",
				Title: "Business model canvas",
				Fields: []domain.DocField{
					{Key: "bmc_partners", Label: "Key partners", Multiline: true},
					{Key: "bmc_activities", Label: "Key activities", Multiline: true},
					{Key: "bmc_resources", Label: "Key resources", Multiline: true},
					{Key: "bmc_value_proposition", Label: "Value proposition", Multiline: true},
					{Key: "bmc_relationships", Label: "Customer relationships", Multiline: true},
					{Key: "bmc_channels", Label: "Channels", Multiline: true},
					{Key: "bmc_segments", Label: "Customer segments", Multiline: true},
					{Key: "bmc_costs", Label: "Cost structure", Multiline: true},
					{Key: "bmc_revenues", Label: "Revenue streams", Multiline: true},
				},
			},
			{
				Key:   "strategy",
				Title: "Strategy",
				Fields: []domain.DocField{
					{Key: "positioning", Label: "Positioning", Multiline: true},
					{Key: "product", Label: "Product and services", Multiline: true},
					{Key: "pricing", Label: "Pricing", Multiline: true},
					{Key: "distribution", Label: "Distribution channels", Multiline: true},
					{Key: "promotion", Label: "Promotion", Multiline: true},
					{Key: "objectives", Label: "Commercial objectives", Multiline: true},
				},
			},
			{
				Key:   "resources",
				Title: "Resources and operations",
				Fields: []domain.DocField{
					{Key: "premises", Label: "Premises", Multiline: true},
					{Key: "equipment", Label: "Equipment", Multiline: true},
					{Key: "suppliers", Label: "Suppliers", Multiline: true},
				},
				Tables: []domain.DocTable{
					{
						Key:     "team",
						Title:   "Team",
						Columns: []string{"Role", "Profile", "Hire month", "Gross salary"},
						Rows:    [][]string{{"", "", "", ""}},
					},
				},
			},
			{
				Key:   "finance",
				Title: "Financial plan",
				Fields: []domain.DocField{
					{Key: "funding_narrative", Label: "Funding narrative", Multiline: true},
					{Key: "assumptions_notes", Label: "Assumption notes", Multiline: true},
				},
			},
		},
	}
}
