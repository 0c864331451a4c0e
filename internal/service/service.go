package service

import (
	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/contract"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/journal"
	"github.com/GlebRadaev/suilottery/internal/mirror"
	"github.com/GlebRadaev/suilottery/internal/navigation"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/auth"

	creationservice "github.com/GlebRadaev/suilottery/internal/service/creationservice"
	detailsservice "github.com/GlebRadaev/suilottery/internal/service/detailsservice"
	listservice "github.com/GlebRadaev/suilottery/internal/service/listservice"
)

type Services struct {
	Wallet   *wallet.Session
	Tokens   *auth.JWTService
	List     *listservice.Service
	Creation *creationservice.Service
	Details  *detailsservice.Service
	Shell    *navigation.Shell
	Journal  journal.Store
}

func New(cfg *config.Config, session *wallet.Session, gateway *chain.Gateway, backend *mirror.Client, store journal.Store) *Services {
	c := contract.New(cfg)
	listService := listservice.New(backend)
	detailsService := detailsservice.New(c, session, gateway, backend, store)
	creationService := creationservice.New(c, session, gateway, backend, store)

	return &Services{
		Wallet:   session,
		Tokens:   auth.NewJWTService(cfg.JWTSecret),
		List:     listService,
		Creation: creationService,
		Details:  detailsService,
		Shell:    navigation.New(listService, detailsService),
		Journal:  store,
	}
}
