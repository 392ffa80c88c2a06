package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurance/internal/gateway/models"
	dErrors "assurance/pkg/domain-errors"
	platformrpc "assurance/pkg/platform/rpc"
)

// stubCaller answers every command with the same reply.
type stubCaller struct {
	reply   json.RawMessage
	err     error
	command string
	payload any
}

func (s *stubCaller) Call(_ context.Context, command string, payload any) (json.RawMessage, error) {
	s.command = command
	s.payload = payload
	return s.reply, s.err
}

func TestMapRPCError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code dErrors.Code
		msg  string
	}{
		{"timeout", fmt.Errorf("findUserById: %w", platformrpc.ErrTimeout), dErrors.CodeTimeout, "user service did not reply in time"},
		{"deadline", context.DeadlineExceeded, dErrors.CodeTimeout, "user service did not reply in time"},
		{"transport", &platformrpc.TransportError{Channel: "user_service_queue", Err: errors.New("broken pipe")}, dErrors.CodeUnavailable, "user service unavailable"},
		{"conflict", &platformrpc.RemoteError{Code: platformrpc.RemoteCodeConflict, Message: "beneficiary already exists for user"}, dErrors.CodeConflict, "beneficiary already exists for user"},
		{"rejected", &platformrpc.RemoteError{Code: platformrpc.RemoteCodeRejected, Message: "insurance creation failed: insuranceType is required"}, dErrors.CodeDownstreamRejected, "insurance creation failed: insuranceType is required"},
		{"remote internal", &platformrpc.RemoteError{Code: platformrpc.RemoteCodeInternal, Message: "boom"}, dErrors.CodeUnavailable, "user service failed"},
		{"unknown command", &platformrpc.RemoteError{Code: platformrpc.RemoteCodeUnknownCommand, Message: "unknown command"}, dErrors.CodeInternal, "user service does not support the command"},
		{"cancelled", context.Canceled, dErrors.CodeCancelled, "request cancelled"},
		{"cancelled call", fmt.Errorf("rpc: findUserById on user_service_queue: %w", context.Canceled), dErrors.CodeCancelled, "request cancelled"},
		{"cancelled publish", &platformrpc.TransportError{Channel: "user_service_queue", Err: context.Canceled}, dErrors.CodeCancelled, "request cancelled"},
		{"malformed", platformrpc.ErrMalformedReply, dErrors.CodeInternal, "unexpected user service reply"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapRPCError("user", tc.err)
			var de *dErrors.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.msg, de.Message)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	assert.NoError(t, mapRPCError("user", nil))
}

func TestLookupNullReplyIsMiss(t *testing.T) {
	caller := &stubCaller{reply: json.RawMessage("null")}

	user, found, err := NewUserClient(caller).FindUserByID(context.Background(), "u404")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)
	assert.Equal(t, cmdFindUserByID, caller.command)
	assert.Equal(t, "u404", caller.payload)
}

func TestLookupDecodesReply(t *testing.T) {
	caller := &stubCaller{reply: json.RawMessage(`{"id":"q1","quoteNumber":"Q-1","insuranceType":"auto","insurancePremium":120,"vehicleId":"V-9"}`)}

	q, found, err := NewQuoteClient(caller).GetQuoteByID(context.Background(), "q1")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Quote{ID: "q1", QuoteNumber: "Q-1", InsuranceType: "auto", InsurancePremium: 120, VehicleID: "V-9"}, *q)
}

func TestCreateRequiresValue(t *testing.T) {
	caller := &stubCaller{reply: json.RawMessage("null")}

	_, err := NewInsuranceClient(caller).CreateInsurance(context.Background(), models.NewInsurance{})

	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
	assert.ErrorIs(t, err, platformrpc.ErrEmptyReply)
}

func TestListNullReplyIsEmpty(t *testing.T) {
	caller := &stubCaller{reply: json.RawMessage("null")}

	items, err := NewInsuranceClient(caller).ListInsurances(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUpdateInsuranceFlattensPatch(t *testing.T) {
	caller := &stubCaller{reply: json.RawMessage(`{"id":"i1","status":"suspended"}`)}
	status := "suspended"

	_, _, err := NewInsuranceClient(caller).UpdateInsurance(context.Background(), "i1", models.InsurancePatch{Status: &status})
	require.NoError(t, err)

	raw, err := json.Marshal(caller.payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"i1","status":"suspended"}`, string(raw))
}
