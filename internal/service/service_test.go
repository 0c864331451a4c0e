package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/journal"
	"github.com/GlebRadaev/suilottery/internal/mirror"
	"github.com/GlebRadaev/suilottery/internal/navigation"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/clients"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		RPCURL:        "http://localhost:9000",
		BackendURL:    "http://localhost:3000",
		PackageID:     "0x2a",
		Module:        "decentralized_lottery",
		OwnerObjectID: "0xb",
		JWTSecret:     "secret",
		GasBudget:     1000,
	}
	client := clients.NewHTTPClient(0)
	gateway := chain.New(cfg, client)
	keystore, err := wallet.ParseKeystore([]byte(`[]`))
	assert.NoError(t, err)
	session := wallet.New(cfg, keystore, gateway)

	services := New(cfg, session, gateway, mirror.New(cfg, client), journal.Nop{})

	assert.NotNil(t, services.Wallet)
	assert.NotNil(t, services.Tokens)
	assert.NotNil(t, services.List)
	assert.NotNil(t, services.Creation)
	assert.NotNil(t, services.Details)
	assert.NotNil(t, services.Journal)
	assert.Equal(t, navigation.ScreenList, services.Shell.Current().Screen())
}
