package handler_test

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"assurance/internal/insurance/handler"
	"assurance/internal/insurance/handler/mocks"
	"assurance/internal/insurance/models"
	"assurance/internal/insurance/service"
	"assurance/internal/insurance/store"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/rpc"
	"assurance/pkg/platform/rpc/memtransport"
)

const channel = "insurance_service_queue"

// =============================================================================
// Insurance command handler
// =============================================================================
// Commands travel over the in-memory bus. Decoding and reply mapping are
// checked against a mocked service.

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	client  *rpc.Client
	bus     *memtransport.Bus
	cancel  context.CancelFunc
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.bus, s.client, s.cancel = serve(s.service)
}

func (s *HandlerSuite) TearDownTest() {
	s.cancel()
	_ = s.bus.Close()
}

func serve(svc handler.Service) (*memtransport.Bus, *rpc.Client, context.CancelFunc) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := memtransport.New()
	server := rpc.NewServer(bus, channel, logger)
	handler.New(svc, logger).Register(server)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = server.Run(ctx) }()
	client := rpc.NewClient(bus, rpc.Options{Channel: channel, Timeout: time.Second})
	go func() { _ = client.Run(ctx) }()
	return bus, client, cancel
}

func (s *HandlerSuite) TestCreateBeneficiaryDecodesOriginalWireShape() {
	payload := json.RawMessage(`{
		"beneficiaryDto": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "userId": "u1"},
		"fileContents": {"justificatifDomicile": "cGRm", "permis": "anBn"}
	}`)
	s.service.EXPECT().CreateBeneficiary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd models.CreateBeneficiaryCommand) (*models.Beneficiary, error) {
			s.Equal("u1", cmd.Beneficiary.UserID)
			s.Equal([]byte("pdf"), cmd.Files.ProofOfResidence)
			s.Equal([]byte("jpg"), cmd.Files.DrivingLicense)
			return &models.Beneficiary{ID: "b1", UserID: "u1", Insurances: []string{}, Attachments: cmd.Files}, nil
		})

	raw, err := s.client.Call(context.Background(), handler.CmdCreateBeneficiary, payload)
	s.Require().NoError(err)
	s.NotContains(string(raw), "justificatifDomicile", "attachments are never echoed")

	var b models.Beneficiary
	s.Require().NoError(json.Unmarshal(raw, &b))
	s.Equal("b1", b.ID)
}

func (s *HandlerSuite) TestBeneficiaryByUserIDMissIsNull() {
	s.service.EXPECT().GetBeneficiaryByUserID(gomock.Any(), "u404").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "beneficiary not found"))

	_, found, err := rpc.Lookup[models.Beneficiary](context.Background(), s.client, handler.CmdGetBeneficiaryByUserID, "u404")
	s.Require().NoError(err)
	s.False(found)
}

func (s *HandlerSuite) TestCreateInsuranceRejectionKeepsMessage() {
	s.service.EXPECT().CreateInsurance(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeValidation, "insurance creation failed: quoteId is required"))

	_, err := s.client.Call(context.Background(), handler.CmdCreateInsurance, models.CreateInsuranceCommand{})
	var remote *rpc.RemoteError
	s.Require().ErrorAs(err, &remote)
	s.Equal(rpc.RemoteCodeRejected, remote.Code)
	s.Equal("insurance creation failed: quoteId is required", remote.Message)
}

func (s *HandlerSuite) TestMalformedPayloadIsRejected() {
	_, err := s.client.Call(context.Background(), handler.CmdGetInsuranceByID, map[string]int{"id": 1})
	var remote *rpc.RemoteError
	s.Require().ErrorAs(err, &remote)
	s.Equal(rpc.RemoteCodeRejected, remote.Code)

	_, err = s.client.Call(context.Background(), handler.CmdUpdateInsurance, "not-an-object")
	s.Require().ErrorAs(err, &remote)
	s.Equal(rpc.RemoteCodeRejected, remote.Code)
}

func (s *HandlerSuite) TestDuplicateBeneficiaryIsConflict() {
	s.service.EXPECT().CreateBeneficiary(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "beneficiary already exists for user"))

	_, err := s.client.Call(context.Background(), handler.CmdCreateBeneficiary, models.CreateBeneficiaryCommand{})
	s.True(rpc.IsConflict(err))
}

func (s *HandlerSuite) TestListsAndLookups() {
	s.service.EXPECT().ListInsurances(gomock.Any()).Return([]*models.Insurance{{ID: "i1"}, {ID: "i2"}}, nil)
	s.service.EXPECT().ListBeneficiaries(gomock.Any()).Return([]*models.Beneficiary{}, nil)
	s.service.EXPECT().GetBeneficiaryWithInsurances(gomock.Any(), "b1").Return(&models.BeneficiaryDetail{
		Beneficiary: &models.Beneficiary{ID: "b1"},
		Insurances:  []*models.Insurance{{ID: "i1"}},
	}, nil)

	insurances, err := rpc.Invoke[[]models.Insurance](context.Background(), s.client, handler.CmdGetInsurances, nil)
	s.Require().NoError(err)
	s.Len(insurances, 2)

	beneficiaries, err := rpc.Invoke[[]models.Beneficiary](context.Background(), s.client, handler.CmdGetBeneficiaries, nil)
	s.Require().NoError(err)
	s.Empty(beneficiaries)

	detail, err := rpc.Invoke[models.BeneficiaryDetail](context.Background(), s.client, handler.CmdGetBeneficiaryWithInsurances, "b1")
	s.Require().NoError(err)
	s.Equal("b1", detail.Beneficiary.ID)
	s.Len(detail.Insurances, 1)
}

// =============================================================================
// Against the real service
// =============================================================================

func TestCommandsAgainstInMemoryService(t *testing.T) {
	svc := service.New(store.NewInMemoryStore())
	bus, client, cancel := serve(svc)
	defer func() {
		cancel()
		_ = bus.Close()
	}()
	ctx := context.Background()

	b, err := rpc.Invoke[models.Beneficiary](ctx, client, handler.CmdCreateBeneficiary, models.CreateBeneficiaryCommand{
		Beneficiary: models.BeneficiaryInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", UserID: "u1"},
		Files:       models.Attachments{ProofOfResidence: []byte("pdf"), DrivingLicense: []byte("jpg")},
	})
	require.NoError(t, err)

	ins, err := rpc.Invoke[models.Insurance](ctx, client, handler.CmdCreateInsurance, models.CreateInsuranceCommand{
		InsuranceType:     "auto",
		CoverageStartDate: "2025-04-01",
		CoverageEndDate:   "2026-04-01",
		InsurancePremium:  540.25,
		QuoteID:           "q1",
		BeneficiaryID:     b.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, ins.Status)

	got, found, err := rpc.Lookup[models.Beneficiary](ctx, client, handler.CmdGetBeneficiaryByUserID, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{ins.ID}, got.Insurances)

	_, err = rpc.Invoke[models.Beneficiary](ctx, client, handler.CmdDeleteBeneficiary, b.ID)
	assert.True(t, rpc.IsConflict(err))

	_, err = rpc.Invoke[models.Insurance](ctx, client, handler.CmdDeleteInsurance, ins.ID)
	require.NoError(t, err)

	_, found, err = rpc.Lookup[models.Insurance](ctx, client, handler.CmdGetInsuranceByID, ins.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
