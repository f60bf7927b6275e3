package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"
	"voice-sales-backend/internal/phone"
	"voice-sales-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// LeadService handles business logic for leads
type LeadService struct {
	store       *repository.Store
	phones      *phone.Normalizer
	validator   *validator.Validate
	concurrency int
}

// NewLeadService creates a new lead service. concurrency bounds bulk imports.
func NewLeadService(store *repository.Store, phones *phone.Normalizer, validator *validator.Validate, concurrency int) *LeadService {
	if concurrency < 1 {
		concurrency = 4
	}
	return &LeadService{
		store:       store,
		phones:      phones,
		validator:   validator,
		concurrency: concurrency,
	}
}

// CreateLeadRequest represents the request to create a lead
type CreateLeadRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Company  string `json:"company,omitempty" validate:"max=100"`
	Industry string `json:"industry" validate:"required,max=50"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateLeadRequest represents the request to update a lead. Status and score are
// owned by the scoring policy and cannot be set here.
type UpdateLeadRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry *string `json:"industry,omitempty" validate:"omitempty,min=1,max=50"`
	Notes    *string `json:"notes,omitempty"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads       []models.Lead `json:"leads"`
	Total       int64         `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// LeadDetailResponse is a lead with its calls, newest first
type LeadDetailResponse struct {
	models.Lead
	CallsCount int `json:"calls_count"`
}

// ImportRow is one lead in a bulk import. Row is the caller's row number used in errors.
type ImportRow struct {
	Row int `json:"-"`
	CreateLeadRequest
}

// ImportRowError reports why one row was not imported
type ImportRowError struct {
	Row     int    `json:"row"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	ImportedCount int              `json:"imported_count"`
	Errors        []ImportRowError `json:"errors"`
}

// Create creates a new lead
func (s *LeadService) Create(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error) {
	normalized := *req
	normalized.Name = strings.TrimSpace(req.Name)
	normalized.Industry = strings.TrimSpace(req.Industry)
	normalized.Email = strings.TrimSpace(req.Email)
	normalized.Phone = s.phones.Normalize(req.Phone)

	if err := validateStruct(s.validator, &normalized); err != nil {
		return nil, err
	}

	existing, err := s.store.Leads.GetByPhone(ctx, normalized.Phone)
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing lead: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLeadExists
	}

	lead := &models.Lead{
		Name:     normalized.Name,
		Phone:    normalized.Phone,
		Email:    normalized.Email,
		Company:  strings.TrimSpace(normalized.Company),
		Industry: normalized.Industry,
		Status:   models.LeadStatusNew,
		Notes:    normalized.Notes,
	}
	if err := s.store.Leads.Create(ctx, lead); err != nil {
		// a concurrent insert with the same phone lost the race on the unique index
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrLeadExists
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":  lead.ID,
		"industry": lead.Industry,
	}).Info("lead created")
	return lead, nil
}

// GetByID retrieves a lead with its calls
func (s *LeadService) GetByID(ctx context.Context, id uint) (*LeadDetailResponse, error) {
	lead, err := s.store.Leads.GetWithCalls(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &LeadDetailResponse{Lead: *lead, CallsCount: len(lead.Calls)}, nil
}

// List retrieves leads, newest first
func (s *LeadService) List(ctx context.Context, filter repository.LeadFilter, page, perPage int) (*LeadListResponse, error) {
	if filter.Status != "" && !models.LeadStatus(filter.Status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	page, perPage, limit, offset := paginate(page, perPage)
	leads, total, err := s.store.Leads.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	if leads == nil {
		leads = []models.Lead{}
	}

	return &LeadListResponse{
		Leads:       leads,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	}, nil
}

// Update updates the descriptive fields of a lead
func (s *LeadService) Update(ctx context.Context, id uint, req *UpdateLeadRequest) (*models.Lead, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.store.Leads.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Company != nil {
		updates["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Industry != nil {
		updates["industry"] = strings.TrimSpace(*req.Industry)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.store.Leads.UpdateFields(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update lead: %w", err)
		}
	}

	return s.store.Leads.GetByID(ctx, id)
}

// Delete removes a lead together with its calls
func (s *LeadService) Delete(ctx context.Context, id uint) error {
	err := s.store.InTransaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Leads.GetByIDForUpdate(ctx, id); err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrLeadNotFound
			}
			return err
		}
		if err := tx.Calls.DeleteByLead(ctx, id); err != nil {
			return err
		}
		return tx.Leads.Delete(ctx, id)
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	logger.WithContext(ctx).WithField("lead_id", id).Info("lead deleted")
	return nil
}

// BulkImport creates a lead per row. A failing row is reported and never aborts the others.
func (s *LeadService) BulkImport(ctx context.Context, rows []ImportRow) (*ImportResult, error) {
	result := &ImportResult{Errors: []ImportRowError{}}
	if len(rows) == 0 {
		return result, nil
	}

	var (
		mu       sync.Mutex
		imported int
	)
	fail := func(row ImportRow, msg string) {
		mu.Lock()
		defer mu.Unlock()
		result.Errors = append(result.Errors, ImportRowError{Row: row.Row, Phone: row.Phone, Message: msg})
	}

	// The first occurrence of a phone within the batch wins
	seen := make(map[string]int, len(rows))
	pending := make([]ImportRow, 0, len(rows))
	for _, row := range rows {
		key := s.phones.Normalize(row.Phone)
		if key == "" {
			pending = append(pending, row)
			continue
		}
		if first, dup := seen[key]; dup {
			fail(row, fmt.Sprintf("duplicate phone number in batch (first seen in row %d)", first))
			continue
		}
		seen[key] = row.Row
		pending = append(pending, row)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, row := range pending {
		g.Go(func() error {
			if gctx.Err() != nil {
				fail(row, gctx.Err().Error())
				return nil
			}
			if _, err := s.Create(gctx, &row.CreateLeadRequest); err != nil {
				fail(row, rowErrorMessage(err))
				return nil
			}
			mu.Lock()
			imported++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Row < result.Errors[j].Row
	})
	result.ImportedCount = imported

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"imported": imported,
		"failed":   len(result.Errors),
	}).Info("bulk lead import finished")
	return result, nil
}

// rowErrorMessage keeps storage details out of per-row errors
func rowErrorMessage(err error) string {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		return err.Error()
	default:
		return "failed to store lead"
	}
}
