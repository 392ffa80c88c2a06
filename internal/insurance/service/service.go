// Package service holds the insurance business rules: beneficiaries, their
// policies and the invariants that tie the two together.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"assurance/internal/insurance/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/sentinel"
	"assurance/pkg/requestcontext"
)

// BeneficiaryStore persists beneficiaries. CreateBeneficiary returns
// sentinel.ErrConflict when the user already has one.
type BeneficiaryStore interface {
	CreateBeneficiary(ctx context.Context, b *models.Beneficiary) error
	FindBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, error)
	FindBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, error)
	ListBeneficiaries(ctx context.Context) ([]*models.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, b *models.Beneficiary) error
	DeleteBeneficiary(ctx context.Context, id string) error
	AttachInsurance(ctx context.Context, beneficiaryID, insuranceID string) error
	DetachInsurance(ctx context.Context, beneficiaryID, insuranceID string) error
}

// InsuranceStore persists policies.
type InsuranceStore interface {
	CreateInsurance(ctx context.Context, ins *models.Insurance) error
	FindInsuranceByID(ctx context.Context, id string) (*models.Insurance, error)
	ListInsurances(ctx context.Context) ([]*models.Insurance, error)
	ListInsurancesByBeneficiary(ctx context.Context, beneficiaryID string) ([]*models.Insurance, error)
	UpdateInsurance(ctx context.Context, ins *models.Insurance) error
	DeleteInsurance(ctx context.Context, id string) error
}

type Store interface {
	BeneficiaryStore
	InsuranceStore
}

// Service owns beneficiaries and insurances.
type Service struct {
	store  Store
	tx     StoreTx
	logger *slog.Logger
	newID  func() string
}

type Option func(*Service)

// WithTx overrides the transaction boundary. By default the store's own
// RunInTx is used when it has one, and a process-wide lock otherwise.
func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator replaces uuid generation, for tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	if tx, ok := store.(StoreTx); ok {
		s.tx = tx
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = &lockTx{}
	}
	return s
}

// =============================================================================
// Beneficiaries
// =============================================================================

// CreateBeneficiary registers a beneficiary for a user. Both attachments are
// required. A second beneficiary for the same user is a conflict.
func (s *Service) CreateBeneficiary(ctx context.Context, cmd models.CreateBeneficiaryCommand) (*models.Beneficiary, error) {
	in := trimInput(cmd.Beneficiary)
	if err := validateBeneficiary(in.FirstName, in.LastName, in.Email); err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, "beneficiary creation failed: "+err.Error())
	}
	if in.UserID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "beneficiary creation failed: userId is required")
	}
	if !cmd.Files.Complete() {
		return nil, dErrors.New(dErrors.CodeValidation, "beneficiary creation failed: justificatifDomicile and permis are required")
	}

	now := requestcontext.Now(ctx)
	b := &models.Beneficiary{
		ID:            s.newID(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PostalAddress: in.PostalAddress,
		PhoneNumber:   in.PhoneNumber,
		Email:         in.Email,
		UserID:        in.UserID,
		Insurances:    []string{},
		Attachments:   cmd.Files,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateBeneficiary(ctx, b); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "beneficiary already exists for user")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save beneficiary")
	}
	s.logger.InfoContext(ctx, "beneficiary created",
		"request_id", requestcontext.RequestID(ctx),
		"beneficiary_id", b.ID,
		"user_id", b.UserID,
	)
	return b, nil
}

func (s *Service) GetBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "beneficiary id is required")
	}
	b, err := s.store.FindBeneficiaryByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "beneficiary")
	}
	return b, nil
}

func (s *Service) GetBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	b, err := s.store.FindBeneficiaryByUserID(ctx, userID)
	if err != nil {
		return nil, wrapLookup(err, "beneficiary")
	}
	return b, nil
}

func (s *Service) ListBeneficiaries(ctx context.Context) ([]*models.Beneficiary, error) {
	out, err := s.store.ListBeneficiaries(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list beneficiaries")
	}
	return out, nil
}

// GetBeneficiaryWithInsurances returns the beneficiary with its policies.
func (s *Service) GetBeneficiaryWithInsurances(ctx context.Context, id string) (*models.BeneficiaryDetail, error) {
	b, err := s.GetBeneficiaryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	policies, err := s.store.ListInsurancesByBeneficiary(ctx, b.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list beneficiary insurances")
	}
	return &models.BeneficiaryDetail{Beneficiary: b, Insurances: policies}, nil
}

// UpdateBeneficiary applies a patch. Both attachments must be supplied and
// replace the stored ones.
func (s *Service) UpdateBeneficiary(ctx context.Context, cmd models.UpdateBeneficiaryCommand) (*models.Beneficiary, error) {
	if !cmd.Files.Complete() {
		return nil, dErrors.New(dErrors.CodeValidation, "beneficiary update failed: justificatifDomicile and permis are required")
	}
	var updated *models.Beneficiary
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.GetBeneficiaryByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		applyBeneficiaryPatch(b, cmd.Beneficiary)
		if err := validateBeneficiary(b.FirstName, b.LastName, b.Email); err != nil {
			return dErrors.New(dErrors.CodeValidation, "beneficiary update failed: "+err.Error())
		}
		b.Attachments = cmd.Files
		b.UpdatedAt = requestcontext.Now(ctx)
		if err := s.store.UpdateBeneficiary(ctx, b); err != nil {
			return wrapLookup(err, "beneficiary")
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBeneficiary removes a beneficiary that holds no policies.
func (s *Service) DeleteBeneficiary(ctx context.Context, id string) (*models.Beneficiary, error) {
	var deleted *models.Beneficiary
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.GetBeneficiaryByID(ctx, id)
		if err != nil {
			return err
		}
		if len(b.Insurances) > 0 {
			return dErrors.New(dErrors.CodeConflict, "beneficiary still holds insurances")
		}
		if err := s.store.DeleteBeneficiary(ctx, b.ID); err != nil {
			return wrapLookup(err, "beneficiary")
		}
		deleted = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// =============================================================================
// Insurances
// =============================================================================

// CreateInsurance creates a policy for an existing beneficiary and records it
// on that beneficiary. Nothing is persisted when validation fails.
func (s *Service) CreateInsurance(ctx context.Context, cmd models.CreateInsuranceCommand) (*models.Insurance, error) {
	ins, err := s.newInsurance(ctx, cmd)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, "insurance creation failed: "+err.Error())
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.store.FindBeneficiaryByID(ctx, ins.BeneficiaryID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeValidation,
					fmt.Sprintf("insurance creation failed: beneficiary %s not found", ins.BeneficiaryID))
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary")
		}
		if err := s.store.CreateInsurance(ctx, ins); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save insurance")
		}
		if err := s.store.AttachInsurance(ctx, ins.BeneficiaryID, ins.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to attach insurance to beneficiary")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "insurance created",
		"request_id", requestcontext.RequestID(ctx),
		"insurance_id", ins.ID,
		"beneficiary_id", ins.BeneficiaryID,
		"quote_id", ins.QuoteID,
	)
	return ins, nil
}

func (s *Service) newInsurance(ctx context.Context, cmd models.CreateInsuranceCommand) (*models.Insurance, error) {
	if strings.TrimSpace(cmd.BeneficiaryID) == "" {
		return nil, errors.New("beneficiaryId is required")
	}
	if strings.TrimSpace(cmd.QuoteID) == "" {
		return nil, errors.New("quoteId is required")
	}
	if strings.TrimSpace(cmd.InsuranceType) == "" {
		return nil, errors.New("insuranceType is required")
	}
	if cmd.InsurancePremium < 0 {
		return nil, errors.New("insurancePremium must not be negative")
	}
	start, ok := models.ParseDate(cmd.CoverageStartDate)
	if !ok {
		return nil, fmt.Errorf("invalid coverageStartDate %q", cmd.CoverageStartDate)
	}
	end, ok := models.ParseDate(cmd.CoverageEndDate)
	if !ok {
		return nil, fmt.Errorf("invalid coverageEndDate %q", cmd.CoverageEndDate)
	}
	if !end.After(start) {
		return nil, errors.New("coverageEndDate must be after coverageStartDate")
	}
	status := cmd.Status
	if status == "" {
		status = models.StatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	now := requestcontext.Now(ctx)
	return &models.Insurance{
		ID:                s.newID(),
		InsuranceType:     strings.TrimSpace(cmd.InsuranceType),
		CoverageStartDate: start,
		CoverageEndDate:   end,
		InsurancePremium:  cmd.InsurancePremium,
		Status:            status,
		QuoteID:           strings.TrimSpace(cmd.QuoteID),
		DossierNumber:     strings.TrimSpace(cmd.DossierNumber),
		VehicleID:         strings.TrimSpace(cmd.VehicleID),
		BeneficiaryID:     strings.TrimSpace(cmd.BeneficiaryID),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (s *Service) GetInsuranceByID(ctx context.Context, id string) (*models.Insurance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "insurance id is required")
	}
	ins, err := s.store.FindInsuranceByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "insurance")
	}
	return ins, nil
}

func (s *Service) ListInsurances(ctx context.Context) ([]*models.Insurance, error) {
	out, err := s.store.ListInsurances(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list insurances")
	}
	return out, nil
}

// UpdateInsurance applies a patch. Coverage dates are revalidated together.
func (s *Service) UpdateInsurance(ctx context.Context, cmd models.UpdateInsuranceCommand) (*models.Insurance, error) {
	var updated *models.Insurance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ins, err := s.GetInsuranceByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := applyInsurancePatch(ins, cmd); err != nil {
			return dErrors.New(dErrors.CodeValidation, "insurance update failed: "+err.Error())
		}
		ins.UpdatedAt = requestcontext.Now(ctx)
		if err := s.store.UpdateInsurance(ctx, ins); err != nil {
			return wrapLookup(err, "insurance")
		}
		updated = ins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteInsurance removes a policy and drops it from its beneficiary.
func (s *Service) DeleteInsurance(ctx context.Context, id string) (*models.Insurance, error) {
	var deleted *models.Insurance
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ins, err := s.GetInsuranceByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.store.DeleteInsurance(ctx, ins.ID); err != nil {
			return wrapLookup(err, "insurance")
		}
		if err := s.store.DetachInsurance(ctx, ins.BeneficiaryID, ins.ID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to detach insurance from beneficiary")
		}
		deleted = ins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// =============================================================================
// Helpers
// =============================================================================

func wrapLookup(err error, what string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, what+" not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+what)
}

func trimInput(in models.BeneficiaryInput) models.BeneficiaryInput {
	return models.BeneficiaryInput{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		PostalAddress: strings.TrimSpace(in.PostalAddress),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		Email:         strings.TrimSpace(in.Email),
		UserID:        strings.TrimSpace(in.UserID),
	}
}

func validateBeneficiary(firstName, lastName, email string) error {
	switch {
	case firstName == "":
		return errors.New("firstName is required")
	case lastName == "":
		return errors.New("lastName is required")
	case email == "":
		return errors.New("email is required")
	case !strings.Contains(email, "@"):
		return errors.New("email is invalid")
	}
	return nil
}

func applyBeneficiaryPatch(b *models.Beneficiary, p models.BeneficiaryPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&b.FirstName, p.FirstName)
	set(&b.LastName, p.LastName)
	set(&b.PostalAddress, p.PostalAddress)
	set(&b.PhoneNumber, p.PhoneNumber)
	set(&b.Email, p.Email)
}

func applyInsurancePatch(ins *models.Insurance, cmd models.UpdateInsuranceCommand) error {
	if cmd.InsuranceType != nil {
		t := strings.TrimSpace(*cmd.InsuranceType)
		if t == "" {
			return errors.New("insuranceType must not be empty")
		}
		ins.InsuranceType = t
	}
	if cmd.CoverageStartDate != nil {
		start, ok := models.ParseDate(*cmd.CoverageStartDate)
		if !ok {
			return fmt.Errorf("invalid coverageStartDate %q", *cmd.CoverageStartDate)
		}
		ins.CoverageStartDate = start
	}
	if cmd.CoverageEndDate != nil {
		end, ok := models.ParseDate(*cmd.CoverageEndDate)
		if !ok {
			return fmt.Errorf("invalid coverageEndDate %q", *cmd.CoverageEndDate)
		}
		ins.CoverageEndDate = end
	}
	if !ins.CoverageEndDate.After(ins.CoverageStartDate) {
		return errors.New("coverageEndDate must be after coverageStartDate")
	}
	if cmd.InsurancePremium != nil {
		if *cmd.InsurancePremium < 0 {
			return errors.New("insurancePremium must not be negative")
		}
		ins.InsurancePremium = *cmd.InsurancePremium
	}
	if cmd.Status != nil {
		if !cmd.Status.IsValid() {
			return fmt.Errorf("unknown status %q", *cmd.Status)
		}
		ins.Status = *cmd.Status
	}
	return nil
}
