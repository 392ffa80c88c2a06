//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"assurance/internal/insurance/models"
	"assurance/internal/insurance/store"
	"assurance/pkg/platform/sentinel"
	"assurance/pkg/platform/tx"
	"assurance/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "insurances", "beneficiaries"))
}

func (s *PostgresStoreSuite) newBeneficiary(id, userID string) *models.Beneficiary {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Beneficiary{
		ID:         id,
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		UserID:     userID,
		Insurances: []string{},
		Attachments: models.Attachments{
			ProofOfResidence: []byte("%PDF-1.7"),
			DrivingLicense:   []byte{0xff, 0xd8, 0xff},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresStoreSuite) newInsurance(id, beneficiaryID string) *models.Insurance {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Insurance{
		ID:                id,
		InsuranceType:     "auto",
		CoverageStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CoverageEndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		InsurancePremium:  540.25,
		Status:            models.StatusActive,
		QuoteID:           "q1",
		BeneficiaryID:     beneficiaryID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// =============================================================================
// Beneficiaries
// =============================================================================

func (s *PostgresStoreSuite) TestBeneficiaryRoundTrip() {
	ctx := context.Background()
	b := s.newBeneficiary("b1", "u1")
	s.Require().NoError(s.store.CreateBeneficiary(ctx, b))

	got, err := s.store.FindBeneficiaryByUserID(ctx, "u1")
	s.Require().NoError(err)
	s.Equal(b.ID, got.ID)
	s.Equal(b.Attachments, got.Attachments)
	s.Equal([]string{}, got.Insurances)
	s.True(b.CreatedAt.Equal(got.CreatedAt))

	_, err = s.store.FindBeneficiaryByID(ctx, "b404")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateUserIsConflict() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateBeneficiary(ctx, s.newBeneficiary("b1", "u1")))
	err := s.store.CreateBeneficiary(ctx, s.newBeneficiary("b2", "u1"))
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestAttachDetachInsurance() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateBeneficiary(ctx, s.newBeneficiary("b1", "u1")))
	s.Require().NoError(s.store.AttachInsurance(ctx, "b1", "i1"))
	s.Require().NoError(s.store.AttachInsurance(ctx, "b1", "i2"))
	s.Require().NoError(s.store.DetachInsurance(ctx, "b1", "i1"))

	got, err := s.store.FindBeneficiaryByID(ctx, "b1")
	s.Require().NoError(err)
	s.Equal([]string{"i2"}, got.Insurances)
	s.ErrorIs(s.store.AttachInsurance(ctx, "b404", "i3"), sentinel.ErrNotFound)
}

// =============================================================================
// Insurances
// =============================================================================

func (s *PostgresStoreSuite) TestInsuranceLifecycle() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateBeneficiary(ctx, s.newBeneficiary("b1", "u1")))
	ins := s.newInsurance("i1", "b1")
	s.Require().NoError(s.store.CreateInsurance(ctx, ins))

	got, err := s.store.FindInsuranceByID(ctx, "i1")
	s.Require().NoError(err)
	s.Equal(540.25, got.InsurancePremium)
	s.True(ins.CoverageEndDate.Equal(got.CoverageEndDate))

	got.Status = models.StatusSuspended
	s.Require().NoError(s.store.UpdateInsurance(ctx, got))

	mine, err := s.store.ListInsurancesByBeneficiary(ctx, "b1")
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(models.StatusSuspended, mine[0].Status)

	s.Require().NoError(s.store.DeleteInsurance(ctx, "i1"))
	s.ErrorIs(s.store.DeleteInsurance(ctx, "i1"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRunInTxRollsBack() {
	ctx := context.Background()
	s.Require().NoError(s.store.CreateBeneficiary(ctx, s.newBeneficiary("b1", "u1")))

	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		_, inTx := tx.From(ctx)
		s.True(inTx)
		s.Require().NoError(s.store.CreateInsurance(ctx, s.newInsurance("i1", "b1")))
		return s.store.AttachInsurance(ctx, "b404", "i1")
	})
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindInsuranceByID(ctx, "i1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
