package services

import (
	"context"
	"math/rand"
	"sync"

	"airadmin/internal/domain/catalog"
	"airadmin/internal/domain/fleet"
	"airadmin/internal/shared/logger"
)

// FleetProvisioner seeds a bot airline with a bounded random sample of
// cheap aircraft. The randomness source is injected so tests can seed it;
// the candidate pool itself is deterministic (price ascending).
type FleetProvisioner struct {
	models       catalog.ModelRepository
	fleet        fleet.Repository
	priceCeiling int64
	maxFleetSize int
	logger       logger.Interface

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFleetProvisioner creates a fleet provisioner.
func NewFleetProvisioner(
	models catalog.ModelRepository,
	fleetRepo fleet.Repository,
	priceCeiling int64,
	maxFleetSize int,
	rng *rand.Rand,
	log logger.Interface,
) *FleetProvisioner {
	return &FleetProvisioner{
		models:       models,
		fleet:        fleetRepo,
		priceCeiling: priceCeiling,
		maxFleetSize: maxFleetSize,
		rng:          rng,
		logger:       log,
	}
}

// Provision inserts up to maxFleetSize airplanes for the owner, sampled
// uniformly without replacement from the models priced below the ceiling.
// An empty pool adds zero aircraft and is not an error. home may be nil.
func (p *FleetProvisioner) Provision(ctx context.Context, ownerID uint, home *catalog.Airport, cycle int) (int, error) {
	pool, err := p.models.ListBelowPrice(ctx, p.priceCeiling)
	if err != nil {
		return 0, err
	}
	if len(pool) == 0 {
		p.logger.Warnw("no airplane models below price ceiling, skipping fleet provisioning",
			"owner_id", ownerID, "ceiling", p.priceCeiling)
		return 0, nil
	}

	count := p.maxFleetSize
	if len(pool) < count {
		count = len(pool)
	}

	var homeID *uint
	if home != nil {
		homeID = &home.ID
	}

	for _, idx := range p.sample(len(pool), count) {
		model := pool[idx]
		airplane := fleet.NewProvisionedAirplane(ownerID, model.ID, model.Price, cycle, homeID)
		if err := p.fleet.Insert(ctx, airplane); err != nil {
			return 0, err
		}
	}

	p.logger.Infow("fleet provisioned", "owner_id", ownerID, "aircraft_added", count)
	return count, nil
}

// sample draws n distinct indices from [0,size).
func (p *FleetProvisioner) sample(size, n int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Perm(size)[:n]
}
