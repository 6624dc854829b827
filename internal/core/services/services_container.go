package services

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	// The engine checks accounts through the account service
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)
	container.Posting = NewPostingService(container.Journal, container.Settings)

	return container
}
