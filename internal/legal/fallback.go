package legal

// FallbackStatutes 内置的Riverside/南加州法规数据，API不可用时使用
func FallbackStatutes() []Statute {
	return []Statute{
		{
			Citation:     "Cal. Civ. Code §1550",
			Title:        "Essential Elements of a Contract",
			Jurisdiction: "California",
			Summary:      "A valid contract requires capacity, consent, lawful object, and consideration.",
			Elements: []LegalElement{
				{Name: "Capacity", Description: "Parties must be legally capable of contracting."},
				{Name: "Consent", Description: "Mutual assent must exist."},
				{Name: "Consideration", Description: "Each side gives something of value."},
			},
		},
		{
			Citation:     "Cal. Civ. Code §3300",
			Title:        "Damages for Breach of Contract",
			Jurisdiction: "California",
			Summary:      "Damages equal to detriment caused by breach.",
		},
	}
}

// FallbackProcedures Riverside县的内置程序性规则
func FallbackProcedures() []ProceduralRule {
	return []ProceduralRule{
		{Name: "Venue", Description: "File in Riverside County where contract was made or defendant resides."},
		{Name: "Service", Description: "Serve defendant >=15 days before hearing if in county; >=20 if out of county."},
		{Name: "Forms", Description: "SC-100 (Claim) and SC-104 (Proof of Service)."},
	}
}

// Jurisdiction 司法辖区信息
type Jurisdiction struct {
	Name      string   `json:"name"`
	Counties  []string `json:"counties"`
	Supported bool     `json:"supported"`
	Note      string   `json:"note,omitempty"`
}

// SupportedJurisdictions 当前支持的司法辖区列表
func SupportedJurisdictions() []Jurisdiction {
	return []Jurisdiction{
		{
			Name:      "California",
			Counties:  []string{"Riverside", "Los Angeles", "San Diego", "Orange", "San Francisco"},
			Supported: true,
		},
		{
			Name:      "New York",
			Counties:  []string{"New York", "Kings", "Queens", "Bronx", "Richmond"},
			Supported: false,
			Note:      "Coming soon",
		},
		{
			Name:      "Texas",
			Counties:  []string{"Harris", "Dallas", "Bexar", "Travis"},
			Supported: false,
			Note:      "Coming soon",
		},
	}
}
