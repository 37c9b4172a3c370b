package services

import (
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
)

// NewContainer creates the service container with its dependencies wired.
// The account registry is built first because posting resolves accounts through it.
func NewContainer(repos portsrepo.RepositoryProvider, numbering portssvc.NumberingSvc, opts ...PostingOption) *portssvc.ServiceContainer {
	accounts := NewAccountRegistry(repos.AccountRepo, repos.LedgerRepo)

	return &portssvc.ServiceContainer{
		Account: accounts,
		Posting: NewPostingService(repos, accounts, numbering, opts...),
	}
}
