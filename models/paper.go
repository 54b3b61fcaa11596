package models

// Paper represents a published study and its metadata.
type Paper struct {
	PaperID       string `json:"paper_id" gorm:"primaryKey;size:32"`
	Title         string `json:"title" gorm:"not null"`
	Abstract      string `json:"abstract,omitempty" gorm:"type:text"`
	Year          int    `json:"year" gorm:"index"`
	Venue         string `json:"venue"`
	DOI           string `json:"doi,omitempty" gorm:"column:doi"`
	Keywords      string `json:"keywords,omitempty"` // semicolon-joined topic list
	URL           string `json:"url,omitempty"`
	CitationCount int    `json:"citation_count" gorm:"default:0"`
}

// TableName sets the explicit table name for GORM.
func (Paper) TableName() string {
	return "papers"
}
