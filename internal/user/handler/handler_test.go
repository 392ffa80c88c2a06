package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"assurance/internal/user/models"
	"assurance/internal/user/service"
	"assurance/internal/user/store"
	"assurance/pkg/platform/rpc"
	"assurance/pkg/platform/rpc/memtransport"
)

// =============================================================================
// findUserById over the command channel
// =============================================================================

type HandlerSuite struct {
	suite.Suite
	client *rpc.Client
	cancel context.CancelFunc
	bus    *memtransport.Bus
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.NewInMemoryStore()
	s.Require().NoError(st.Seed([]models.User{{
		ID:         "u1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 rue de la Paix",
		City:       "Paris",
		PostalCode: "75002",
		Email:      "jane.doe@example.com",
	}}))

	s.bus = memtransport.New()
	server := rpc.NewServer(s.bus, "user_service_queue", logger)
	New(service.NewService(st), logger).Register(server)

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	go func() { _ = server.Run(ctx) }()

	s.client = rpc.NewClient(s.bus, rpc.Options{Channel: "user_service_queue", Timeout: time.Second})
	go func() { _ = s.client.Run(ctx) }()
}

func (s *HandlerSuite) TearDownTest() {
	s.cancel()
	_ = s.bus.Close()
}

func (s *HandlerSuite) TestKnownUser() {
	u, found, err := rpc.Lookup[models.User](context.Background(), s.client, CmdFindUserByID, "u1")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("75002", u.PostalCode)
}

func (s *HandlerSuite) TestUnknownUserRepliesNull() {
	_, found, err := rpc.Lookup[models.User](context.Background(), s.client, CmdFindUserByID, "ghost")
	s.Require().NoError(err)
	s.False(found)
}

func (s *HandlerSuite) TestMalformedPayloadIsRejected() {
	_, err := s.client.Call(context.Background(), CmdFindUserByID, map[string]int{"id": 1})
	var remote *rpc.RemoteError
	s.Require().ErrorAs(err, &remote)
	s.Equal(rpc.RemoteCodeRejected, remote.Code)
}
