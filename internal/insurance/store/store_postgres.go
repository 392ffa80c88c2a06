package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"assurance/internal/insurance/models"
	"assurance/internal/platform/postgres"
	"assurance/pkg/platform/sentinel"
	"assurance/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

// PostgresStore persists beneficiaries and insurances in PostgreSQL.
// Statements join the transaction carried by ctx when there is one.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables when they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure insurance schema: %w", err)
	}
	return nil
}

// RunInTx runs fn in a database transaction.
func (s *PostgresStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return tx.Run(ctx, s.db, fn)
}

func (s *PostgresStore) exec(ctx context.Context) tx.Executor {
	return tx.ExecutorFrom(ctx, s.db)
}

// -----------------------------------------------------------------------------
// Beneficiaries
// -----------------------------------------------------------------------------

const beneficiaryColumns = `id, first_name, last_name, postal_address, phone_number, email, user_id,
	insurance_ids, proof_of_residence, driving_license, created_at, updated_at`

func (s *PostgresStore) CreateBeneficiary(ctx context.Context, b *models.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (` + beneficiaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.exec(ctx).ExecContext(ctx, query,
		b.ID,
		b.FirstName,
		b.LastName,
		b.PostalAddress,
		b.PhoneNumber,
		b.Email,
		b.UserID,
		pq.Array(nonNil(b.Insurances)),
		b.Attachments.ProofOfResidence,
		b.Attachments.DrivingLicense,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("beneficiary for user %s: %w", b.UserID, sentinel.ErrConflict)
		}
		return fmt.Errorf("create beneficiary: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBeneficiaryByID(ctx context.Context, id string) (*models.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE id = $1`
	return s.findBeneficiary(ctx, query, id)
}

func (s *PostgresStore) FindBeneficiaryByUserID(ctx context.Context, userID string) (*models.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE user_id = $1`
	return s.findBeneficiary(ctx, query, userID)
}

func (s *PostgresStore) findBeneficiary(ctx context.Context, query string, arg string) (*models.Beneficiary, error) {
	b, err := scanBeneficiary(s.exec(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find beneficiary: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) ListBeneficiaries(ctx context.Context) ([]*models.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries ORDER BY created_at, id`
	rows, err := s.exec(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list beneficiaries: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Beneficiary, 0)
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beneficiary: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list beneficiaries: %w", err)
	}
	return out, nil
}

// UpdateBeneficiary rewrites the editable fields. user_id and insurance_ids
// are left untouched.
func (s *PostgresStore) UpdateBeneficiary(ctx context.Context, b *models.Beneficiary) error {
	query := `
		UPDATE beneficiaries SET
			first_name = $2,
			last_name = $3,
			postal_address = $4,
			phone_number = $5,
			email = $6,
			proof_of_residence = $7,
			driving_license = $8,
			updated_at = $9
		WHERE id = $1
	`
	res, err := s.exec(ctx).ExecContext(ctx, query,
		b.ID,
		b.FirstName,
		b.LastName,
		b.PostalAddress,
		b.PhoneNumber,
		b.Email,
		b.Attachments.ProofOfResidence,
		b.Attachments.DrivingLicense,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update beneficiary: %w", err)
	}
	return requireAffected(res, "update beneficiary")
}

func (s *PostgresStore) DeleteBeneficiary(ctx context.Context, id string) error {
	res, err := s.exec(ctx).ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete beneficiary: %w", err)
	}
	return requireAffected(res, "delete beneficiary")
}

func (s *PostgresStore) AttachInsurance(ctx context.Context, beneficiaryID, insuranceID string) error {
	query := `
		UPDATE beneficiaries
		SET insurance_ids = array_append(insurance_ids, $2)
		WHERE id = $1
	`
	res, err := s.exec(ctx).ExecContext(ctx, query, beneficiaryID, insuranceID)
	if err != nil {
		return fmt.Errorf("attach insurance: %w", err)
	}
	return requireAffected(res, "attach insurance")
}

func (s *PostgresStore) DetachInsurance(ctx context.Context, beneficiaryID, insuranceID string) error {
	query := `
		UPDATE beneficiaries
		SET insurance_ids = array_remove(insurance_ids, $2)
		WHERE id = $1
	`
	res, err := s.exec(ctx).ExecContext(ctx, query, beneficiaryID, insuranceID)
	if err != nil {
		return fmt.Errorf("detach insurance: %w", err)
	}
	return requireAffected(res, "detach insurance")
}

// -----------------------------------------------------------------------------
// Insurances
// -----------------------------------------------------------------------------

const insuranceColumns = `id, insurance_type, coverage_start_date, coverage_end_date, insurance_premium,
	status, quote_id, dossier_number, vehicle_id, beneficiary_id, created_at, updated_at`

func (s *PostgresStore) CreateInsurance(ctx context.Context, ins *models.Insurance) error {
	query := `
		INSERT INTO insurances (` + insuranceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.exec(ctx).ExecContext(ctx, query,
		ins.ID,
		ins.InsuranceType,
		ins.CoverageStartDate,
		ins.CoverageEndDate,
		ins.InsurancePremium,
		string(ins.Status),
		ins.QuoteID,
		ins.DossierNumber,
		ins.VehicleID,
		ins.BeneficiaryID,
		ins.CreatedAt,
		ins.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("insurance %s: %w", ins.ID, sentinel.ErrConflict)
		}
		return fmt.Errorf("create insurance: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindInsuranceByID(ctx context.Context, id string) (*models.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances WHERE id = $1`
	ins, err := scanInsurance(s.exec(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find insurance: %w", err)
	}
	return ins, nil
}

func (s *PostgresStore) ListInsurances(ctx context.Context) ([]*models.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances ORDER BY created_at, id`
	return s.listInsurances(ctx, query)
}

func (s *PostgresStore) ListInsurancesByBeneficiary(ctx context.Context, beneficiaryID string) ([]*models.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurances WHERE beneficiary_id = $1 ORDER BY created_at, id`
	return s.listInsurances(ctx, query, beneficiaryID)
}

func (s *PostgresStore) listInsurances(ctx context.Context, query string, args ...any) ([]*models.Insurance, error) {
	rows, err := s.exec(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Insurance, 0)
	for rows.Next() {
		ins, err := scanInsurance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insurance: %w", err)
		}
		out = append(out, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateInsurance(ctx context.Context, ins *models.Insurance) error {
	query := `
		UPDATE insurances SET
			insurance_type = $2,
			coverage_start_date = $3,
			coverage_end_date = $4,
			insurance_premium = $5,
			status = $6,
			updated_at = $7
		WHERE id = $1
	`
	res, err := s.exec(ctx).ExecContext(ctx, query,
		ins.ID,
		ins.InsuranceType,
		ins.CoverageStartDate,
		ins.CoverageEndDate,
		ins.InsurancePremium,
		string(ins.Status),
		ins.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insurance: %w", err)
	}
	return requireAffected(res, "update insurance")
}

func (s *PostgresStore) DeleteInsurance(ctx context.Context, id string) error {
	res, err := s.exec(ctx).ExecContext(ctx, `DELETE FROM insurances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insurance: %w", err)
	}
	return requireAffected(res, "delete insurance")
}

// -----------------------------------------------------------------------------
// Scanning
// -----------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBeneficiary(row rowScanner) (*models.Beneficiary, error) {
	var b models.Beneficiary
	var insuranceIDs pq.StringArray
	if err := row.Scan(
		&b.ID,
		&b.FirstName,
		&b.LastName,
		&b.PostalAddress,
		&b.PhoneNumber,
		&b.Email,
		&b.UserID,
		&insuranceIDs,
		&b.Attachments.ProofOfResidence,
		&b.Attachments.DrivingLicense,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Insurances = nonNil([]string(insuranceIDs))
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

func scanInsurance(row rowScanner) (*models.Insurance, error) {
	var ins models.Insurance
	var status string
	if err := row.Scan(
		&ins.ID,
		&ins.InsuranceType,
		&ins.CoverageStartDate,
		&ins.CoverageEndDate,
		&ins.InsurancePremium,
		&status,
		&ins.QuoteID,
		&ins.DossierNumber,
		&ins.VehicleID,
		&ins.BeneficiaryID,
		&ins.CreatedAt,
		&ins.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ins.Status = models.InsuranceStatus(status)
	ins.CoverageStartDate = ins.CoverageStartDate.UTC()
	ins.CoverageEndDate = ins.CoverageEndDate.UTC()
	ins.CreatedAt = ins.CreatedAt.UTC()
	ins.UpdatedAt = ins.UpdatedAt.UTC()
	return &ins, nil
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
