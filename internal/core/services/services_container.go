package services

import (
	"github.com/SscSPs/adminpro/internal/core/ports/events"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(
		repos.CurrencyRepo,
		WithRateHistory(repos.ExchangeRateRepo),
		WithEventPublisher(publisher),
	)
	container.ExchangeRate = NewExchangeRateHistoryService(repos.ExchangeRateRepo, nil)
	container.Role = NewRoleService(repos.RoleRepo, nil)
	container.User = NewUserService(repos.UserRepo, repos.RoleRepo, nil)
	container.Token = NewTokenService(cfg)

	return container
}
