package models

// Organization represents a university or research institution.
type Organization struct {
	OrgID        string  `json:"org_id" gorm:"primaryKey;size:32"`
	Name         string  `json:"name" gorm:"not null"`
	Country      string  `json:"country" gorm:"index"`
	Abbreviation string  `json:"abbreviation"`
	RankScore    float64 `json:"rank_score"`
	PaperCount   int     `json:"paper_count" gorm:"default:0"`
}

// TableName sets the explicit table name for GORM.
func (Organization) TableName() string {
	return "organizations"
}
