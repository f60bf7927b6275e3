package callflow

import (
	"strings"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
)

// Placeholders holds the values substituted into scripts and follow-up templates
type Placeholders struct {
	LeadName  string
	Company   string
	AgentName string
}

// Substitute replaces {lead_name}, {company} and {agent_name} literally
func (p Placeholders) Substitute(template string) string {
	return strings.NewReplacer(
		"{lead_name}", p.LeadName,
		"{company}", companyOrFallback(p.Company),
		"{agent_name}", p.AgentName,
	).Replace(template)
}

// FollowUp is a resolved follow-up message
type FollowUp struct {
	Message     string         `json:"message"`
	Channel     models.Channel `json:"channel"`
	TemplateKey string         `json:"template_key"`
}

// TemplateKey returns the template key for an outcome and channel
func TemplateKey(outcome models.CallOutcome, channel models.Channel) string {
	return string(outcome) + "_" + string(channel)
}

// DefaultTemplateKey returns the fallback template key for a channel
func DefaultTemplateKey(channel models.Channel) string {
	return "default_" + string(channel)
}

// ResolveFollowUp looks up {outcome}_{channel} in the playbook templates, falls back to
// default_{channel}, and substitutes placeholders. It returns ErrNoTemplate on a double miss.
func ResolveFollowUp(playbook *models.Playbook, outcome *models.CallOutcome, channel models.Channel, vars Placeholders) (FollowUp, error) {
	if !channel.IsValid() {
		return FollowUp{}, apperrors.ErrInvalidChannel
	}
	if playbook == nil {
		return FollowUp{}, apperrors.ErrNoTemplate
	}

	keys := make([]string, 0, 2)
	if outcome != nil && *outcome != "" {
		keys = append(keys, TemplateKey(*outcome, channel))
	}
	keys = append(keys, DefaultTemplateKey(channel))

	for _, key := range keys {
		if tmpl, ok := playbook.Template(key); ok {
			return FollowUp{
				Message:     vars.Substitute(tmpl),
				Channel:     channel,
				TemplateKey: key,
			}, nil
		}
	}
	return FollowUp{}, apperrors.ErrNoTemplate
}
