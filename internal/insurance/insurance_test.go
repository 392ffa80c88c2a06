package insurance

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurance/internal/platform/config"
	"assurance/pkg/platform/rpc/memtransport"
)

func TestNewCommandServerInMemory(t *testing.T) {
	cfg := &config.Config{
		Channels: config.Channels{Insurance: "insurance_service_queue"},
		Service:  config.Service{StoreKind: config.StoreMemory},
	}

	srv, release, err := NewCommandServer(context.Background(), memtransport.New(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	require.NoError(t, err)
	assert.NoError(t, release())
	assert.Equal(t, []string{
		"createBeneficiary",
		"createInsurance",
		"deleteBeneficiary",
		"deleteInsurance",
		"getBeneficiaries",
		"getBeneficiaryById",
		"getBeneficiaryByUserId",
		"getBeneficiaryWithInsurances",
		"getInsuranceById",
		"getInsurances",
		"updateBeneficiary",
		"updateInsurance",
	}, srv.Commands())
}

func TestNewCommandServerPostgresRequiresURL(t *testing.T) {
	cfg := &config.Config{Service: config.Service{StoreKind: config.StorePostgres}}

	_, _, err := NewCommandServer(context.Background(), memtransport.New(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.Error(t, err)
}
