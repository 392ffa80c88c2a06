// Package orchestrator runs the beneficiary-insurance workflow: resolve the
// caller, resolve or create their beneficiary, resolve the quote and create
// the policy. Steps run strictly in order, each on the previous reply.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"assurance/internal/gateway/metrics"
	"assurance/internal/gateway/models"
	"assurance/internal/gateway/ports"
	dErrors "assurance/pkg/domain-errors"
	audit "assurance/pkg/platform/audit"
	"assurance/pkg/requestcontext"
)

var (
	ErrUserNotFound      = dErrors.New(dErrors.CodeNotFound, "user not found")
	ErrQuoteNotFound     = dErrors.New(dErrors.CodeNotFound, "quote not found")
	ErrMissingAttachment = dErrors.New(dErrors.CodeValidation, "justificatifDomicile and permis files are required")
)

// Request is one caller's ask. SubjectID comes from the verified credential.
type Request struct {
	SubjectID         string
	QuoteID           string
	CoverageStartDate string
	CoverageEndDate   string
	Attachments       models.Attachments
}

// Compensator is called when a run fails after it created a beneficiary.
type Compensator interface {
	Compensate(ctx context.Context, created *models.Beneficiary, cause error)
}

// AuditPublisher receives workflow events. Emit must not block.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Orchestrator holds no per-run state; runs may proceed concurrently.
type Orchestrator struct {
	users         ports.UserPort
	beneficiaries ports.BeneficiaryPort
	quotes        ports.QuotePort
	insurances    ports.InsurancePort
	compensator   Compensator
	auditor       AuditPublisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

type Option func(*Orchestrator)

func WithCompensator(c Compensator) Option {
	return func(o *Orchestrator) {
		o.compensator = c
	}
}

func WithAuditor(a AuditPublisher) Option {
	return func(o *Orchestrator) {
		o.auditor = a
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func New(
	users ports.UserPort,
	beneficiaries ports.BeneficiaryPort,
	quotes ports.QuotePort,
	insurances ports.InsurancePort,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		users:         users,
		beneficiaries: beneficiaries,
		quotes:        quotes,
		insurances:    insurances,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.compensator == nil {
		o.compensator = LogOnlyCompensator{logger: o.logger}
	}
	return o
}

// CreateBeneficiaryInsurance runs the workflow for req. The caller's
// cancellation is not observed; each command is bounded by its client timeout.
func (o *Orchestrator) CreateBeneficiaryInsurance(ctx context.Context, req Request) (*models.Insurance, error) {
	ctx = context.WithoutCancel(ctx)
	start := time.Now()

	run := &run{Orchestrator: o, req: req}
	ins, err := run.execute(ctx)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
		if run.created != nil {
			o.compensator.Compensate(ctx, run.created, err)
		}
		o.emit(ctx, audit.Event{
			Action:   audit.EventOrchestrationFailed,
			UserID:   req.SubjectID,
			Subject:  req.QuoteID,
			Decision: outcome,
			Reason:   describe(err),
		})
		o.logger.WarnContext(ctx, "beneficiary insurance orchestration failed",
			"request_id", requestcontext.RequestID(ctx),
			"user_id", req.SubjectID,
			"quote_id", req.QuoteID,
			"step", run.step,
			"code", outcome,
			"error", err,
		)
	} else {
		o.emit(ctx, audit.Event{
			Action:   audit.EventInsuranceCreated,
			UserID:   req.SubjectID,
			Subject:  ins.ID,
			Decision: "created",
		})
		o.logger.InfoContext(ctx, "beneficiary insurance created",
			"request_id", requestcontext.RequestID(ctx),
			"user_id", req.SubjectID,
			"beneficiary_id", ins.BeneficiaryID,
			"insurance_id", ins.ID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	o.metrics.ObserveOrchestration(outcome, time.Since(start))
	return ins, err
}

func (o *Orchestrator) emit(ctx context.Context, event audit.Event) {
	if o.auditor != nil {
		o.auditor.Emit(ctx, event)
	}
}

// run carries one execution's progress for logging and compensation.
type run struct {
	*Orchestrator
	req     Request
	step    string
	created *models.Beneficiary
}

func (r *run) execute(ctx context.Context) (*models.Insurance, error) {
	r.step = "validate_attachments"
	if !r.req.Attachments.Complete() {
		return nil, ErrMissingAttachment
	}

	r.step = "find_user"
	user, found, err := r.users.FindUserByID(ctx, r.req.SubjectID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}

	r.step = "resolve_beneficiary"
	beneficiary, err := r.resolveBeneficiary(ctx, user)
	if err != nil {
		return nil, err
	}

	r.step = "find_quote"
	quote, found, err := r.quotes.GetQuoteByID(ctx, r.req.QuoteID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrQuoteNotFound
	}

	r.step = "create_insurance"
	return r.insurances.CreateInsurance(ctx, AssembleInsurance(quote, beneficiary, r.req))
}

// resolveBeneficiary returns the caller's beneficiary, creating it from the
// user record when there is none. Losing a creation race to a concurrent run
// re-reads the winner's record.
func (r *run) resolveBeneficiary(ctx context.Context, user *models.User) (*models.Beneficiary, error) {
	existing, found, err := r.beneficiaries.GetBeneficiaryByUserID(ctx, r.req.SubjectID)
	if err != nil {
		return nil, err
	}
	if found {
		r.emit(ctx, audit.Event{Action: audit.EventBeneficiaryReused, UserID: r.req.SubjectID, Subject: existing.ID})
		return existing, nil
	}

	created, err := r.beneficiaries.CreateBeneficiary(ctx, NewBeneficiaryFor(user, r.req.SubjectID, r.req.Attachments))
	if err == nil {
		r.created = created
		r.metrics.IncBeneficiaryCreated()
		r.emit(ctx, audit.Event{Action: audit.EventBeneficiaryCreated, UserID: r.req.SubjectID, Subject: created.ID, Decision: "created"})
		return created, nil
	}
	if !dErrors.Is(err, dErrors.CodeConflict) {
		return nil, err
	}

	r.metrics.IncBeneficiaryConflict()
	winner, found, lookupErr := r.beneficiaries.GetBeneficiaryByUserID(ctx, r.req.SubjectID)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if !found {
		return nil, err
	}
	r.emit(ctx, audit.Event{Action: audit.EventBeneficiaryReused, UserID: r.req.SubjectID, Subject: winner.ID, Reason: "creation conflict"})
	return winner, nil
}

// NewBeneficiaryFor builds the createBeneficiary payload from a user record.
func NewBeneficiaryFor(user *models.User, subjectID string, files models.Attachments) models.NewBeneficiary {
	return models.NewBeneficiary{
		Beneficiary: models.BeneficiaryFields{
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			PostalAddress: user.PostalAddress(),
			PhoneNumber:   user.PhoneNumber,
			Email:         user.Email,
			UserID:        subjectID,
		},
		Files: files,
	}
}

// AssembleInsurance builds the createInsurance payload.
func AssembleInsurance(quote *models.Quote, beneficiary *models.Beneficiary, req Request) models.NewInsurance {
	return models.NewInsurance{
		InsuranceType:     quote.InsuranceType,
		CoverageStartDate: req.CoverageStartDate,
		CoverageEndDate:   req.CoverageEndDate,
		InsurancePremium:  quote.InsurancePremium,
		Status:            models.StatusActive,
		QuoteID:           quote.ID,
		DossierNumber:     quote.QuoteNumber,
		VehicleID:         quote.VehicleID,
		BeneficiaryID:     beneficiary.ID,
	}
}

// LogOnlyCompensator leaves the created beneficiary in place and logs it.
type LogOnlyCompensator struct {
	logger *slog.Logger
}

func NewLogOnlyCompensator(logger *slog.Logger) LogOnlyCompensator {
	return LogOnlyCompensator{logger: logger}
}

func (c LogOnlyCompensator) Compensate(ctx context.Context, created *models.Beneficiary, cause error) {
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "beneficiary kept after failed orchestration",
		"request_id", requestcontext.RequestID(ctx),
		"beneficiary_id", created.ID,
		"user_id", created.UserID,
		"cause", describe(cause),
	)
}

// describe returns the outermost coded message of err.
func describe(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return strings.TrimSpace(err.Error())
}
