// Package handler exposes the gateway over HTTP. Every route is a thin proxy
// to a downstream command except POST /beneficiary-insurance, which runs the
// orchestrator.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"assurance/internal/gateway/models"
	"assurance/internal/gateway/orchestrator"
	"assurance/internal/gateway/ports"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/httputil"
	"assurance/pkg/platform/middleware/auth"
	"assurance/pkg/requestcontext"
)

// Form fields carrying the two beneficiary documents.
const (
	FieldProofOfResidence = "justificatifDomicile"
	FieldDrivingLicense   = "permis"
)

// DefaultMaxUploadBytes bounds a multipart body, both files included.
const DefaultMaxUploadBytes = 10 << 20

// Orchestrator runs the beneficiary-insurance workflow.
type Orchestrator interface {
	CreateBeneficiaryInsurance(ctx context.Context, req orchestrator.Request) (*models.Insurance, error)
}

// Handler serves the gateway routes.
type Handler struct {
	orchestrator   Orchestrator
	beneficiaries  ports.BeneficiaryPort
	insurances     ports.InsurancePort
	logger         *slog.Logger
	maxUploadBytes int64
}

func New(orch Orchestrator, beneficiaries ports.BeneficiaryPort, insurances ports.InsurancePort, logger *slog.Logger) *Handler {
	return &Handler{
		orchestrator:   orch,
		beneficiaries:  beneficiaries,
		insurances:     insurances,
		logger:         logger,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
}

// Register mounts the gateway routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/beneficiary-insurance", h.handleCreateBeneficiaryInsurance)

	r.Get("/insurance", h.handleListInsurances)
	r.Post("/insurance", h.handleCreateInsurance)
	r.Get("/insurance/{id}", h.handleGetInsurance)
	r.Put("/insurance/{id}", h.handleUpdateInsurance)
	r.Delete("/insurance/{id}", h.handleDeleteInsurance)

	r.Get("/beneficiaries", h.handleListBeneficiaries)
	r.Post("/beneficiary", h.handleCreateBeneficiary)
	r.Get("/beneficiary/{id}", h.handleGetBeneficiary)
	r.Put("/beneficiary/{id}", h.handleUpdateBeneficiary)
	r.Get("/beneficiary/{id}/insurances", h.handleGetBeneficiaryWithInsurances)
}

// handleCreateBeneficiaryInsurance creates a policy for the authenticated
// caller, creating their beneficiary record first when needed.
func (h *Handler) handleCreateBeneficiaryInsurance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := auth.GetUserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	if err := h.parseMultipart(w, r); err != nil {
		h.fail(ctx, w, "create beneficiary insurance", err)
		return
	}
	req := orchestrator.Request{
		SubjectID:         userID,
		QuoteID:           formValue(r, "quoteId"),
		CoverageStartDate: formValue(r, "coverageStartDate"),
		CoverageEndDate:   formValue(r, "coverageEndDate"),
	}
	for _, field := range []struct{ name, value string }{
		{"quoteId", req.QuoteID},
		{"coverageStartDate", req.CoverageStartDate},
		{"coverageEndDate", req.CoverageEndDate},
	} {
		if field.value == "" {
			h.fail(ctx, w, "create beneficiary insurance", dErrors.New(dErrors.CodeBadRequest, field.name+" is required"))
			return
		}
	}
	attachments, err := readAttachments(r)
	if err != nil {
		h.fail(ctx, w, "create beneficiary insurance", err)
		return
	}
	req.Attachments = attachments

	ins, err := h.orchestrator.CreateBeneficiaryInsurance(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create beneficiary insurance", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ins)
}

func (h *Handler) handleListInsurances(w http.ResponseWriter, r *http.Request) {
	items, err := h.insurances.ListInsurances(r.Context())
	if err != nil {
		h.fail(r.Context(), w, "list insurances", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateInsurance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var in models.NewInsurance
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.fail(ctx, w, "create insurance", dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	ins, err := h.insurances.CreateInsurance(ctx, in)
	if err != nil {
		h.fail(ctx, w, "create insurance", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ins)
}

func (h *Handler) handleGetInsurance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ins, found, err := h.insurances.GetInsuranceByID(r.Context(), id)
	h.respondFound(w, r, "get insurance", ins, found, err, "insurance not found")
}

func (h *Handler) handleUpdateInsurance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var patch models.InsurancePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.fail(ctx, w, "update insurance", dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	ins, found, err := h.insurances.UpdateInsurance(ctx, chi.URLParam(r, "id"), patch)
	h.respondFound(w, r, "update insurance", ins, found, err, "insurance not found")
}

func (h *Handler) handleDeleteInsurance(w http.ResponseWriter, r *http.Request) {
	ins, found, err := h.insurances.DeleteInsurance(r.Context(), chi.URLParam(r, "id"))
	h.respondFound(w, r, "delete insurance", ins, found, err, "insurance not found")
}

func (h *Handler) handleListBeneficiaries(w http.ResponseWriter, r *http.Request) {
	items, err := h.beneficiaries.ListBeneficiaries(r.Context())
	if err != nil {
		h.fail(r.Context(), w, "list beneficiaries", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.parseMultipart(w, r); err != nil {
		h.fail(ctx, w, "create beneficiary", err)
		return
	}
	files, err := readAttachments(r)
	if err != nil {
		h.fail(ctx, w, "create beneficiary", err)
		return
	}
	if !files.Complete() {
		h.fail(ctx, w, "create beneficiary", orchestrator.ErrMissingAttachment)
		return
	}
	b, err := h.beneficiaries.CreateBeneficiary(ctx, models.NewBeneficiary{
		Beneficiary: models.BeneficiaryFields{
			FirstName:     formValue(r, "firstName"),
			LastName:      formValue(r, "lastName"),
			PostalAddress: formValue(r, "postalAddress"),
			PhoneNumber:   formValue(r, "phoneNumber"),
			Email:         formValue(r, "email"),
			UserID:        formValue(r, "userId"),
		},
		Files: files,
	})
	if err != nil {
		h.fail(ctx, w, "create beneficiary", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleGetBeneficiary(w http.ResponseWriter, r *http.Request) {
	b, found, err := h.beneficiaries.GetBeneficiaryByID(r.Context(), chi.URLParam(r, "id"))
	h.respondFound(w, r, "get beneficiary", b, found, err, "beneficiary not found")
}

// handleUpdateBeneficiary replaces both documents and patches the fields
// present in the form.
func (h *Handler) handleUpdateBeneficiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.parseMultipart(w, r); err != nil {
		h.fail(ctx, w, "update beneficiary", err)
		return
	}
	files, err := readAttachments(r)
	if err != nil {
		h.fail(ctx, w, "update beneficiary", err)
		return
	}
	if !files.Complete() {
		h.fail(ctx, w, "update beneficiary", orchestrator.ErrMissingAttachment)
		return
	}
	b, found, err := h.beneficiaries.UpdateBeneficiary(ctx, models.BeneficiaryUpdate{
		ID: chi.URLParam(r, "id"),
		Beneficiary: models.BeneficiaryPatch{
			FirstName:     optionalFormValue(r, "firstName"),
			LastName:      optionalFormValue(r, "lastName"),
			PostalAddress: optionalFormValue(r, "postalAddress"),
			PhoneNumber:   optionalFormValue(r, "phoneNumber"),
			Email:         optionalFormValue(r, "email"),
		},
		Files: files,
	})
	h.respondFound(w, r, "update beneficiary", b, found, err, "beneficiary not found")
}

func (h *Handler) handleGetBeneficiaryWithInsurances(w http.ResponseWriter, r *http.Request) {
	detail, found, err := h.beneficiaries.GetBeneficiaryWithInsurances(r.Context(), chi.URLParam(r, "id"))
	h.respondFound(w, r, "get beneficiary insurances", detail, found, err, "beneficiary not found")
}

// respondFound writes v, a 404 when the lookup missed, or the error.
func (h *Handler) respondFound(w http.ResponseWriter, r *http.Request, op string, v any, found bool, err error, missing string) {
	if err != nil {
		h.fail(r.Context(), w, op, err)
		return
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, missing))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

// fail logs err at a level matching its code and writes the error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	code := dErrors.CodeOf(err)
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"op", op,
		"code", code,
		"error", err,
	}
	switch code {
	case dErrors.CodeInternal, dErrors.CodeUnavailable, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, "request failed", attrs...)
	case dErrors.CodeCancelled:
		h.logger.InfoContext(ctx, "request cancelled by caller", attrs...)
	default:
		h.logger.WarnContext(ctx, "request rejected", attrs...)
	}
	httputil.WriteError(w, err)
}

func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return dErrors.Wrap(err, dErrors.CodeBadRequest, "upload too large")
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid multipart form")
	}
	return nil
}

// readAttachments loads both documents; a missing part is left empty.
func readAttachments(r *http.Request) (models.Attachments, error) {
	proof, err := readFile(r, FieldProofOfResidence)
	if err != nil {
		return models.Attachments{}, err
	}
	licence, err := readFile(r, FieldDrivingLicense)
	if err != nil {
		return models.Attachments{}, err
	}
	return models.Attachments{ProofOfResidence: proof, DrivingLicense: licence}, nil
}

func readFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+field+" file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+field+" file")
	}
	return data, nil
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func optionalFormValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])
	return &v
}
