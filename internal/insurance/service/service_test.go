package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"assurance/internal/insurance/models"
	"assurance/internal/insurance/store"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/requestcontext"
)

// =============================================================================
// Insurance Service Test Suite
// =============================================================================
// Runs the business rules against the in-memory store with a fixed clock and
// deterministic ids.

type ServiceSuite struct {
	suite.Suite
	store   *store.InMemoryStore
	service *Service
	ctx     context.Context
	now     time.Time
	seq     int
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.seq = 0
	s.now = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = store.NewInMemoryStore()
	s.service = New(s.store, WithIDGenerator(func() string {
		s.seq++
		return fmt.Sprintf("id-%d", s.seq)
	}))
}

func attachments() models.Attachments {
	return models.Attachments{ProofOfResidence: []byte("pdf"), DrivingLicense: []byte("jpg")}
}

func (s *ServiceSuite) createBeneficiary(userID string) *models.Beneficiary {
	b, err := s.service.CreateBeneficiary(s.ctx, models.CreateBeneficiaryCommand{
		Beneficiary: models.BeneficiaryInput{
			FirstName:     "Jane",
			LastName:      "Doe",
			PostalAddress: "1 rue de la Paix 75002 Paris",
			Email:         "jane@example.com",
			UserID:        userID,
		},
		Files: attachments(),
	})
	s.Require().NoError(err)
	return b
}

func (s *ServiceSuite) insuranceCommand(beneficiaryID string) models.CreateInsuranceCommand {
	return models.CreateInsuranceCommand{
		InsuranceType:     "auto",
		CoverageStartDate: "2025-04-01",
		CoverageEndDate:   "2026-04-01",
		InsurancePremium:  540.25,
		QuoteID:           "q1",
		VehicleID:         "v1",
		BeneficiaryID:     beneficiaryID,
	}
}

// =============================================================================
// Beneficiaries
// =============================================================================

func (s *ServiceSuite) TestCreateBeneficiary() {
	b := s.createBeneficiary(" u1 ")
	s.Equal("id-1", b.ID)
	s.Equal("u1", b.UserID)
	s.Equal(s.now, b.CreatedAt)
	s.Equal([]string{}, b.Insurances)

	got, err := s.service.GetBeneficiaryByUserID(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(b.ID, got.ID)
}

func (s *ServiceSuite) TestCreateBeneficiaryValidation() {
	valid := models.BeneficiaryInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", UserID: "u1"}
	cases := []struct {
		name  string
		input models.BeneficiaryInput
		files models.Attachments
	}{
		{"missing first name", models.BeneficiaryInput{LastName: "Doe", Email: "jane@example.com", UserID: "u1"}, attachments()},
		{"invalid email", models.BeneficiaryInput{FirstName: "Jane", LastName: "Doe", Email: "jane", UserID: "u1"}, attachments()},
		{"missing user", models.BeneficiaryInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}, attachments()},
		{"missing driving licence", valid, models.Attachments{ProofOfResidence: []byte("pdf")}},
		{"missing proof of residence", valid, models.Attachments{DrivingLicense: []byte("jpg")}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateBeneficiary(s.ctx, models.CreateBeneficiaryCommand{Beneficiary: tc.input, Files: tc.files})
			s.Require().Error(err)
			s.True(dErrors.Is(err, dErrors.CodeValidation))
			s.Contains(err.Error(), "beneficiary creation failed")
		})
	}
	list, err := s.service.ListBeneficiaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceSuite) TestSecondBeneficiaryForUserIsConflict() {
	s.createBeneficiary("u1")
	_, err := s.service.CreateBeneficiary(s.ctx, models.CreateBeneficiaryCommand{
		Beneficiary: models.BeneficiaryInput{FirstName: "J", LastName: "D", Email: "j@example.com", UserID: "u1"},
		Files:       attachments(),
	})
	s.True(dErrors.Is(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestGetBeneficiaryNotFound() {
	_, err := s.service.GetBeneficiaryByID(s.ctx, "b404")
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
	_, err = s.service.GetBeneficiaryByUserID(s.ctx, "u404")
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
	_, err = s.service.GetBeneficiaryByID(s.ctx, " ")
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestUpdateBeneficiary() {
	b := s.createBeneficiary("u1")
	lastName := "Smith"
	later := s.now.Add(time.Hour)

	updated, err := s.service.UpdateBeneficiary(requestcontext.WithTime(s.ctx, later), models.UpdateBeneficiaryCommand{
		ID:          b.ID,
		Beneficiary: models.BeneficiaryPatch{LastName: &lastName},
		Files:       models.Attachments{ProofOfResidence: []byte("new"), DrivingLicense: []byte("new")},
	})
	s.Require().NoError(err)
	s.Equal("Smith", updated.LastName)
	s.Equal("Jane", updated.FirstName)
	s.Equal(later, updated.UpdatedAt)

	stored, err := s.store.FindBeneficiaryByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal([]byte("new"), stored.Attachments.ProofOfResidence)

	_, err = s.service.UpdateBeneficiary(s.ctx, models.UpdateBeneficiaryCommand{ID: b.ID, Beneficiary: models.BeneficiaryPatch{LastName: &lastName}})
	s.True(dErrors.Is(err, dErrors.CodeValidation), "files are required")

	empty := ""
	_, err = s.service.UpdateBeneficiary(s.ctx, models.UpdateBeneficiaryCommand{ID: b.ID, Beneficiary: models.BeneficiaryPatch{FirstName: &empty}, Files: attachments()})
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	_, err = s.service.UpdateBeneficiary(s.ctx, models.UpdateBeneficiaryCommand{ID: "b404", Files: attachments()})
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDeleteBeneficiary() {
	b := s.createBeneficiary("u1")
	_, err := s.service.CreateInsurance(s.ctx, s.insuranceCommand(b.ID))
	s.Require().NoError(err)

	_, err = s.service.DeleteBeneficiary(s.ctx, b.ID)
	s.True(dErrors.Is(err, dErrors.CodeConflict), "beneficiary with insurances cannot be deleted")

	other := s.createBeneficiary("u2")
	deleted, err := s.service.DeleteBeneficiary(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Equal(other.ID, deleted.ID)

	_, err = s.service.GetBeneficiaryByID(s.ctx, other.ID)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

// =============================================================================
// Insurances
// =============================================================================

func (s *ServiceSuite) TestCreateInsuranceAttachesToBeneficiary() {
	b := s.createBeneficiary("u1")

	ins, err := s.service.CreateInsurance(s.ctx, s.insuranceCommand(b.ID))
	s.Require().NoError(err)
	s.Equal(models.StatusActive, ins.Status)
	s.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), ins.CoverageStartDate)
	s.Equal("q1", ins.QuoteID)

	detail, err := s.service.GetBeneficiaryWithInsurances(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal([]string{ins.ID}, detail.Beneficiary.Insurances)
	s.Require().Len(detail.Insurances, 1)
	s.Equal(ins.ID, detail.Insurances[0].ID)
}

func (s *ServiceSuite) TestCreateInsuranceValidation() {
	b := s.createBeneficiary("u1")
	mutate := map[string]func(*models.CreateInsuranceCommand){
		"missing quote":          func(c *models.CreateInsuranceCommand) { c.QuoteID = "" },
		"missing beneficiary":    func(c *models.CreateInsuranceCommand) { c.BeneficiaryID = "" },
		"unknown beneficiary":    func(c *models.CreateInsuranceCommand) { c.BeneficiaryID = "b404" },
		"bad start date":         func(c *models.CreateInsuranceCommand) { c.CoverageStartDate = "01/04/2025" },
		"end before start":       func(c *models.CreateInsuranceCommand) { c.CoverageEndDate = "2025-03-01" },
		"end equals start":       func(c *models.CreateInsuranceCommand) { c.CoverageEndDate = c.CoverageStartDate },
		"negative premium":       func(c *models.CreateInsuranceCommand) { c.InsurancePremium = -1 },
		"unknown status":         func(c *models.CreateInsuranceCommand) { c.Status = "pending" },
		"missing insurance type": func(c *models.CreateInsuranceCommand) { c.InsuranceType = " " },
	}
	for name, fn := range mutate {
		s.Run(name, func() {
			cmd := s.insuranceCommand(b.ID)
			fn(&cmd)
			_, err := s.service.CreateInsurance(s.ctx, cmd)
			s.Require().Error(err)
			s.True(dErrors.Is(err, dErrors.CodeValidation))
			s.Contains(err.Error(), "insurance creation failed")
		})
	}

	all, err := s.service.ListInsurances(s.ctx)
	s.Require().NoError(err)
	s.Empty(all, "no partial policy is stored")
	stored, err := s.store.FindBeneficiaryByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Empty(stored.Insurances)
}

func (s *ServiceSuite) TestUpdateInsurance() {
	b := s.createBeneficiary("u1")
	ins, err := s.service.CreateInsurance(s.ctx, s.insuranceCommand(b.ID))
	s.Require().NoError(err)

	status := models.StatusSuspended
	premium := 600.0
	updated, err := s.service.UpdateInsurance(s.ctx, models.UpdateInsuranceCommand{ID: ins.ID, Status: &status, InsurancePremium: &premium})
	s.Require().NoError(err)
	s.Equal(models.StatusSuspended, updated.Status)
	s.Equal(600.0, updated.InsurancePremium)

	end := "2025-01-01"
	_, err = s.service.UpdateInsurance(s.ctx, models.UpdateInsuranceCommand{ID: ins.ID, CoverageEndDate: &end})
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	_, err = s.service.UpdateInsurance(s.ctx, models.UpdateInsuranceCommand{ID: "i404", Status: &status})
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDeleteInsuranceDetachesFromBeneficiary() {
	b := s.createBeneficiary("u1")
	ins, err := s.service.CreateInsurance(s.ctx, s.insuranceCommand(b.ID))
	s.Require().NoError(err)

	deleted, err := s.service.DeleteInsurance(s.ctx, ins.ID)
	s.Require().NoError(err)
	s.Equal(ins.ID, deleted.ID)

	stored, err := s.store.FindBeneficiaryByID(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Empty(stored.Insurances)

	_, err = s.service.DeleteInsurance(s.ctx, ins.ID)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

// =============================================================================
// Store failures
// =============================================================================

type brokenStore struct {
	*store.InMemoryStore
}

func (brokenStore) ListInsurances(context.Context) ([]*models.Insurance, error) {
	return nil, errors.New("connection reset")
}

func (brokenStore) CreateInsurance(context.Context, *models.Insurance) error {
	return errors.New("connection reset")
}

func (s *ServiceSuite) TestStoreFailuresAreInternal() {
	svc := New(brokenStore{s.store})
	_, err := svc.ListInsurances(s.ctx)
	s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))

	b := s.createBeneficiary("u1")
	_, err = svc.CreateInsurance(s.ctx, s.insuranceCommand(b.ID))
	s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestCancelledContextAbortsTransaction() {
	b := s.createBeneficiary("u1")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.service.CreateInsurance(ctx, s.insuranceCommand(b.ID))
	s.True(dErrors.Is(err, dErrors.CodeCancelled))

	ctx, cancel = context.WithDeadline(s.ctx, time.Now().Add(-time.Second))
	defer cancel()
	_, err = s.service.CreateInsurance(ctx, s.insuranceCommand(b.ID))
	s.True(dErrors.Is(err, dErrors.CodeTimeout))
}
