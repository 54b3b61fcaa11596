package models

// PaperAuthorRelation is the authorship join table. The schema stays
// many-to-many capable; the sample loader happens to emit exactly one
// first-and-corresponding author per paper.
type PaperAuthorRelation struct {
	PaperID         string `json:"paper_id" gorm:"primaryKey;size:32"`
	AuthorID        string `json:"author_id" gorm:"primaryKey;size:32"`
	AuthorOrder     int    `json:"author_order" gorm:"default:1"`
	IsCorresponding bool   `json:"is_corresponding" gorm:"default:false"`

	Paper  *Paper  `json:"-" gorm:"foreignKey:PaperID;references:PaperID"`
	Author *Author `json:"-" gorm:"foreignKey:AuthorID;references:AuthorID"`
}

// TableName sets the explicit table name for GORM.
func (PaperAuthorRelation) TableName() string {
	return "paper_author_relations"
}
