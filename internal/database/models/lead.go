package models

// Lead represents a prospective customer tracked through the sales funnel
type Lead struct {
	BaseModel
	Name     string     `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Phone    string     `json:"phone" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	Email    string     `json:"email" gorm:"size:120" validate:"omitempty,email,max=120"`
	Company  string     `json:"company" gorm:"size:100" validate:"max=100"`
	Industry string     `json:"industry" gorm:"size:50;not null;index" validate:"required,max=50"`
	Status   LeadStatus `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	Score    int        `json:"score" gorm:"not null;default:0"`
	Notes    string     `json:"notes" gorm:"type:text"`

	// Relationships
	Calls []Call `json:"calls,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
