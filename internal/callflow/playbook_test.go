package callflow

import (
	"strings"
	"testing"

	"voice-sales-backend/internal/database/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func restaurantPlaybook() *models.Playbook {
	return &models.Playbook{
		Industry:          "restaurant",
		OpeningScript:     "Hi {lead_name}, this is {agent_name}. Does {company} ever miss calls during the dinner rush?",
		PainPoints:        datatypes.JSONSlice[string]{"missed calls", "no-shows", "staff costs", "online orders", "reviews", "peak hours"},
		ValuePropositions: datatypes.JSONSlice[string]{"24/7 answering", "automatic reservations"},
		FollowUpTemplates: datatypes.NewJSONType(map[string]string{
			"appointment_email": "Hi {lead_name}, thanks for booking a demo for {company}. - {agent_name}",
			"default_email":     "Hi {lead_name}, thanks for your time today.",
			"default_sms":       "Thanks {lead_name}! {agent_name}",
		}),
	}
}

func TestBuildContext(t *testing.T) {
	lead := &models.Lead{Name: "Maria", Company: "Casa Maria", Industry: "restaurant"}

	got := BuildContext(lead, restaurantPlaybook(), "  we already have a receptionist  ")

	want := ContextBundle{
		LeadName:          "Maria",
		Company:           "Casa Maria",
		Industry:          "restaurant",
		OpeningScript:     restaurantPlaybook().OpeningScript,
		PainPoints:        []string{"missed calls", "no-shows", "staff costs", "online orders", "reviews"},
		ValuePropositions: []string{"24/7 answering", "automatic reservations"},
		Utterance:         "we already have a receptionist",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildContext() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildContext_WithoutPlaybookOrCompany(t *testing.T) {
	lead := &models.Lead{Name: "Tom", Industry: "plumbing"}

	got := BuildContext(lead, nil, strings.Repeat("a", MaxUtteranceRunes+50))

	assert.Equal(t, FallbackCompany, got.Company)
	assert.Empty(t, got.PainPoints)
	assert.Empty(t, got.OpeningScript)
	assert.Len(t, got.Utterance, MaxUtteranceRunes)
}

func TestContextBundle_SystemPrompt(t *testing.T) {
	lead := &models.Lead{Name: "Maria", Company: "Casa Maria", Industry: "restaurant"}
	prompt := BuildContext(lead, restaurantPlaybook(), "how much is it?").SystemPrompt()

	assert.Contains(t, prompt, "calling Maria from Casa Maria in the restaurant industry")
	assert.Contains(t, prompt, `Customer just said: "how much is it?"`)
	assert.Contains(t, prompt, "Pain Points: missed calls, no-shows")
	assert.Contains(t, prompt, "Value Propositions: 24/7 answering, automatic reservations")
}

func TestGreeting(t *testing.T) {
	lead := &models.Lead{Name: "Maria", Industry: "restaurant"}

	t.Run("playbook opening script", func(t *testing.T) {
		got := Greeting(lead, restaurantPlaybook(), "Sarah")
		assert.Equal(t, "Hi Maria, this is Sarah. Does your business ever miss calls during the dinner rush?", got)
	})

	t.Run("generic greeting", func(t *testing.T) {
		got := Greeting(lead, nil, "Sarah")
		assert.Equal(t, "Hello Maria, this is Sarah from our sales team. How are you doing today?", got)
	})
}
