package callflow

import (
	"fmt"
	"strings"

	"voice-sales-backend/internal/database/models"
)

const (
	// MaxTalkingPoints caps the pain points and value propositions handed to text generation
	MaxTalkingPoints = 5
	// MaxUtteranceRunes caps the customer utterance handed to text generation
	MaxUtteranceRunes = 1000

	// FallbackCompany replaces a missing lead company in scripts and templates
	FallbackCompany = "your business"
)

// ContextBundle is the talking-point context handed to the text generation collaborator
type ContextBundle struct {
	LeadName          string   `json:"lead_name"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	OpeningScript     string   `json:"opening_script,omitempty"`
	PainPoints        []string `json:"pain_points,omitempty"`
	ValuePropositions []string `json:"value_propositions,omitempty"`
	Utterance         string   `json:"utterance,omitempty"`
}

// BuildContext assembles the context bundle for a lead. The playbook may be nil.
func BuildContext(lead *models.Lead, playbook *models.Playbook, utterance string) ContextBundle {
	bundle := ContextBundle{
		LeadName:  lead.Name,
		Company:   companyOrFallback(lead.Company),
		Industry:  lead.Industry,
		Utterance: truncateRunes(strings.TrimSpace(utterance), MaxUtteranceRunes),
	}
	if playbook != nil {
		bundle.OpeningScript = playbook.OpeningScript
		bundle.PainPoints = firstN(playbook.PainPoints, MaxTalkingPoints)
		bundle.ValuePropositions = firstN(playbook.ValuePropositions, MaxTalkingPoints)
	}
	return bundle
}

// SystemPrompt renders the bundle as instructions for a sales agent turn
func (b ContextBundle) SystemPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert sales agent calling %s from %s in the %s industry.\n", b.LeadName, b.Company, b.Industry)
	if b.Utterance != "" {
		fmt.Fprintf(&sb, "Customer just said: %q\n", b.Utterance)
	}
	sb.WriteString("Your goal is to be conversational and natural, identify pain points and needs, present relevant solutions, " +
		"handle objections professionally and move towards scheduling a demo or appointment.\n")
	sb.WriteString("Keep responses under 50 words and sound human-like.\n")
	if len(b.PainPoints) > 0 || len(b.ValuePropositions) > 0 {
		sb.WriteString("Use these industry-specific talking points:\n")
		if len(b.PainPoints) > 0 {
			fmt.Fprintf(&sb, "Pain Points: %s\n", strings.Join(b.PainPoints, ", "))
		}
		if len(b.ValuePropositions) > 0 {
			fmt.Fprintf(&sb, "Value Propositions: %s\n", strings.Join(b.ValuePropositions, ", "))
		}
	}
	return sb.String()
}

// Greeting returns the opening line for a call: the playbook opening script with
// placeholders substituted, or a generic greeting when there is no playbook.
func Greeting(lead *models.Lead, playbook *models.Playbook, agentName string) string {
	vars := Placeholders{LeadName: lead.Name, Company: lead.Company, AgentName: agentName}
	if playbook == nil || strings.TrimSpace(playbook.OpeningScript) == "" {
		return vars.Substitute("Hello {lead_name}, this is {agent_name} from our sales team. How are you doing today?")
	}
	return vars.Substitute(playbook.OpeningScript)
}

func companyOrFallback(company string) string {
	if strings.TrimSpace(company) == "" {
		return FallbackCompany
	}
	return company
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return append([]string(nil), items...)
	}
	return append([]string(nil), items[:n]...)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
