package services

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// tracker may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker portssvc.EventTracker) *portssvc.ServiceContainer {
	clock := domain.SystemClock{}
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, clock)
	container.CostCenter = NewCostCenterService(repos.CostCenterRepo, clock)

	poster := NewPoster(cfg, clock)
	options := []JournalEntryOption{
		WithCostCenterDirectory(container.CostCenter),
		WithClock(clock),
	}
	if tracker != nil {
		options = append(options, WithEventTracker(tracker))
	}
	container.JournalEntry = NewJournalEntryService(repos.JournalEntryRepo, container.Account, poster, options...)

	container.Draft = NewDraftService(repos.DraftStore, container.JournalEntry, clock)

	return container
}

// NewPoster builds the draft -> posted transition with the configured rule set
// and cryptographically random entry number suffixes.
func NewPoster(cfg *config.Config, clock domain.Clock) *domain.Poster {
	return domain.NewPoster(
		clock,
		utils.NewEntryNumberSuffixes(domain.EntryNumberSuffixLength),
		domain.NewValidator(cfg.AllowNetLines),
	)
}
