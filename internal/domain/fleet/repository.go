package fleet

import "context"

// Repository defines aircraft persistence scoped to one owner airline.
type Repository interface {
	// DeleteByOwner removes the owner's airplane configurations first,
	// then the airplanes, returning the airplane count.
	DeleteByOwner(ctx context.Context, ownerID uint) (int64, error)

	// Insert inserts one airplane and sets its id.
	Insert(ctx context.Context, a *Airplane) error

	// CountByOwner counts unsold airplanes of the owner.
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}
