// Package airline holds the airline aggregate: the airline row itself, its
// financial profile, its bases, and the personality classification used by
// the reporting layer.
package airline

// Type is the airline category stored in airline.airline_type.
type Type int

const (
	TypeRegular  Type = 0
	TypeDiscount Type = 1
	TypeBot      Type = 2
	TypeLuxury   Type = 3
	TypeRegional Type = 4
)

func (t Type) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDiscount:
		return "discount"
	case TypeBot:
		return "bot"
	case TypeLuxury:
		return "luxury"
	case TypeRegional:
		return "regional"
	default:
		return "unknown"
	}
}

// Airline is the identity row. Bots are never deleted by the lifecycle
// manager, only reset.
type Airline struct {
	ID   uint
	Name string
	Type Type
}

// IsBot reports whether the airline is a simulated non-player actor.
func (a *Airline) IsBot() bool {
	return a.Type == TypeBot
}
