package models

import (
	"gorm.io/datatypes"
)

// Playbook represents industry-specific sales content
type Playbook struct {
	BaseModel
	Industry           string                                `json:"industry" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	OpeningScript      string                                `json:"opening_script" gorm:"type:text;not null" validate:"required"`
	PainPoints         datatypes.JSONSlice[string]           `json:"pain_points"`
	ValuePropositions  datatypes.JSONSlice[string]           `json:"value_propositions"`
	ObjectionResponses datatypes.JSONType[map[string]string] `json:"objection_responses"`
	ClosingTechniques  datatypes.JSONSlice[string]           `json:"closing_techniques"`
	FollowUpTemplates  datatypes.JSONType[map[string]string] `json:"follow_up_templates"`
}

// TableName returns the table name for Playbook
func (Playbook) TableName() string {
	return "playbooks"
}

// Template returns the follow-up template stored under key
func (p *Playbook) Template(key string) (string, bool) {
	templates := p.FollowUpTemplates.Data()
	if templates == nil {
		return "", false
	}
	t, ok := templates[key]
	return t, ok
}
