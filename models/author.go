package models

// Author represents a researcher affiliated with exactly one organization.
type Author struct {
	AuthorID   string `json:"author_id" gorm:"primaryKey;size:32"`
	Name       string `json:"name" gorm:"not null"`
	OrgID      string `json:"org_id" gorm:"index;size:32"`
	HIndex     int    `json:"h_index"`
	PaperCount int    `json:"paper_count" gorm:"default:0"`
	Orcid      string `json:"orcid" gorm:"column:orcid;size:32"`
	Email      string `json:"email"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrgID;references:OrgID"`
}

// TableName sets the explicit table name for GORM.
func (Author) TableName() string {
	return "authors"
}
