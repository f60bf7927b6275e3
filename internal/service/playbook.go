package service

import (
	"context"
	"fmt"
	"strings"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// PlaybookService handles authoring and lookup of playbooks
type PlaybookService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewPlaybookService creates a new playbook service
func NewPlaybookService(store *repository.Store, validator *validator.Validate) *PlaybookService {
	return &PlaybookService{store: store, validator: validator}
}

// CreatePlaybookRequest represents the request to create a playbook
type CreatePlaybookRequest struct {
	Industry           string            `json:"industry" yaml:"industry" validate:"required,max=50"`
	OpeningScript      string            `json:"opening_script" yaml:"opening_script" validate:"required"`
	PainPoints         []string          `json:"pain_points,omitempty" yaml:"pain_points"`
	ValuePropositions  []string          `json:"value_propositions,omitempty" yaml:"value_propositions"`
	ObjectionResponses map[string]string `json:"objection_responses,omitempty" yaml:"objection_responses"`
	ClosingTechniques  []string          `json:"closing_techniques,omitempty" yaml:"closing_techniques"`
	FollowUpTemplates  map[string]string `json:"follow_up_templates,omitempty" yaml:"follow_up_templates"`
}

// Create creates a new playbook. An industry has at most one playbook.
func (s *PlaybookService) Create(ctx context.Context, req *CreatePlaybookRequest) (*models.Playbook, error) {
	req.Industry = strings.TrimSpace(req.Industry)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.store.Playbooks.ExistsForIndustry(ctx, req.Industry)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing playbook: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPlaybookExists
	}

	playbook := &models.Playbook{
		Industry:           req.Industry,
		OpeningScript:      req.OpeningScript,
		PainPoints:         datatypes.JSONSlice[string](nonNilStrings(req.PainPoints)),
		ValuePropositions:  datatypes.JSONSlice[string](nonNilStrings(req.ValuePropositions)),
		ObjectionResponses: datatypes.NewJSONType(nonNilMap(req.ObjectionResponses)),
		ClosingTechniques:  datatypes.JSONSlice[string](nonNilStrings(req.ClosingTechniques)),
		FollowUpTemplates:  datatypes.NewJSONType(nonNilMap(req.FollowUpTemplates)),
	}
	if err := s.store.Playbooks.Create(ctx, playbook); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPlaybookExists
		}
		return nil, fmt.Errorf("failed to create playbook: %w", err)
	}
	return playbook, nil
}

// GetAll retrieves every playbook ordered by industry
func (s *PlaybookService) GetAll(ctx context.Context) ([]models.Playbook, error) {
	playbooks, err := s.store.Playbooks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playbooks: %w", err)
	}
	if playbooks == nil {
		playbooks = []models.Playbook{}
	}
	return playbooks, nil
}

// GetByIndustry retrieves the playbook for an industry
func (s *PlaybookService) GetByIndustry(ctx context.Context, industry string) (*models.Playbook, error) {
	playbook, err := s.store.Playbooks.GetByIndustry(ctx, strings.TrimSpace(industry))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrPlaybookNotFound
		}
		return nil, fmt.Errorf("failed to get playbook: %w", err)
	}
	return playbook, nil
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
