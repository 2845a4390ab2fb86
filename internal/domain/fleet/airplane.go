// Package fleet holds the owned-aircraft side of the airline aggregate.
package fleet

// Airplane is one owned aircraft. Each airplane may carry a configuration
// row that has to be removed before the airplane itself.
type Airplane struct {
	ID               uint
	ModelID          uint
	OwnerID          uint
	ConstructedCycle int
	PurchasedCycle   int
	Condition        float64
	DepreciationRate float64
	Value            int64
	IsSold           bool
	DealerRatio      float64
	HomeAirportID    *uint
	PurchaseRate     float64
	Version          int
}

// NewProvisionedAirplane builds the factory-fresh aircraft inserted during
// fleet provisioning: full condition, unsold, valued at the model price.
func NewProvisionedAirplane(ownerID, modelID uint, price int64, cycle int, homeAirportID *uint) *Airplane {
	return &Airplane{
		ModelID:          modelID,
		OwnerID:          ownerID,
		ConstructedCycle: cycle,
		PurchasedCycle:   cycle,
		Condition:        100,
		DepreciationRate: 0,
		Value:            price,
		IsSold:           false,
		DealerRatio:      1.0,
		HomeAirportID:    homeAirportID,
		PurchaseRate:     1.0,
		Version:          0,
	}
}
