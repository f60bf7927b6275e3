package routes

import (
	"context"
	"fmt"
	"time"

	"voice-sales-backend/internal/config"
	"voice-sales-backend/internal/dispatch"
	"voice-sales-backend/internal/notify"
	"voice-sales-backend/internal/phone"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/telephony"
	"voice-sales-backend/internal/textgen"
	"voice-sales-backend/internal/tts"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Collaborators are the external systems the services talk to
type Collaborators struct {
	Telephony   telephony.Provider
	Generator   textgen.Generator
	Synthesizer tts.Synthesizer
	Mailer      notify.Mailer
	// Queue is nil when bulk dials run inline
	Queue *dispatch.Client
}

// NewCollaborators builds the collaborators selected by cfg
func NewCollaborators(ctx context.Context, cfg *config.Config) (*Collaborators, error) {
	collab := &Collaborators{
		Synthesizer: tts.NewElevenLabsClient(tts.ElevenLabsConfig{
			APIKey:  cfg.ElevenLabsAPIKey,
			VoiceID: cfg.ElevenLabsVoiceID,
			BaseURL: cfg.ElevenLabsBaseURL,
			Timeout: seconds(cfg.TTSTimeoutSec),
		}),
		Mailer: notify.NewSMTPMailer(notify.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUser,
			Password:  cfg.SMTPPassword,
			FromEmail: cfg.SMTPFromEmail,
			FromName:  cfg.SMTPFromName,
		}),
	}

	switch cfg.TelephonyProvider {
	case "twilio":
		collab.Telephony = telephony.NewTwilioClient(telephony.TwilioConfig{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			FromNumber: cfg.TwilioPhoneNumber,
			BaseURL:    cfg.TwilioBaseURL,
			Timeout:    seconds(cfg.TelephonyTimeoutSec),
		})
	default:
		collab.Telephony = telephony.NewDemoProvider()
	}

	switch cfg.TextGenProvider {
	case "openai":
		collab.Generator = textgen.NewOpenAIClient(textgen.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: seconds(cfg.TextGenTimeoutSec),
		})
	case "gemini":
		gemini, err := textgen.NewGeminiClient(ctx, textgen.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: seconds(cfg.TextGenTimeoutSec),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		collab.Generator = gemini
	default:
		collab.Generator = textgen.Unconfigured{}
	}

	if cfg.RedisURL != "" {
		queue, err := dispatch.NewClient(DispatchConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatch client: %w", err)
		}
		collab.Queue = queue
	}

	return collab, nil
}

// Close releases the queue connection
func (c *Collaborators) Close() error {
	if c.Queue != nil {
		return c.Queue.Close()
	}
	return nil
}

// DispatchConfig derives the queue settings from cfg
func DispatchConfig(cfg *config.Config) dispatch.Config {
	return dispatch.Config{
		RedisURL:       cfg.RedisURL,
		Queue:          cfg.DispatchQueue,
		Concurrency:    cfg.DispatchConcurrency,
		DialsPerSecond: cfg.DialRatePerSec,
	}
}

// Services holds every service the API serves
type Services struct {
	Leads        *service.LeadService
	Playbooks    *service.PlaybookService
	Calls        *service.CallService
	Conversation *service.ConversationService
	Sentiment    *service.SentimentService
	FollowUps    *service.FollowUpService
	Dashboard    *service.DashboardService
	Bulk         *service.BulkDispatchService
	Synthesizer  tts.Synthesizer
	Validator    *validator.Validate
	// Queue is nil when bulk dials run inline
	Queue *dispatch.Client
}

// NewServices wires the services on top of db and the collaborators
func NewServices(db *gorm.DB, cfg *config.Config, collab *Collaborators) *Services {
	store := repository.NewStore(db)
	validator := service.NewValidator()

	calls := service.NewCallService(store, collab.Telephony, service.CallConfig{
		PublicBaseURL:   cfg.PublicBaseURL,
		RequirePlaybook: cfg.InitiateRequiresPlaybook,
	})

	var queue service.DialQueue
	if collab.Queue != nil {
		queue = collab.Queue
	}

	return &Services{
		Leads:        service.NewLeadService(store, phone.NewNormalizer(cfg.PhoneDefaultRegion), validator, cfg.BulkConcurrency),
		Playbooks:    service.NewPlaybookService(store, validator),
		Calls:        calls,
		Conversation: service.NewConversationService(store, collab.Generator, cfg.AgentName),
		Sentiment:    service.NewSentimentService(store, collab.Generator),
		FollowUps:    service.NewFollowUpService(store, collab.Mailer, collab.Telephony, cfg.AgentName),
		Dashboard:    service.NewDashboardService(store),
		Bulk: service.NewBulkDispatchService(calls, queue, service.BulkConfig{
			Concurrency:    cfg.BulkConcurrency,
			DialsPerSecond: cfg.DialRatePerSec,
		}),
		Synthesizer: collab.Synthesizer,
		Validator:   validator,
		Queue:       collab.Queue,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
