// Package route holds an airline's active offerings (links) together with
// their assignment and consumption history.
package route

// Link is one offered route. Assignments and consumption rows reference it
// and must be removed first.
type Link struct {
	ID            uint
	AirlineID     uint
	FromAirportID uint
	ToAirportID   uint
	Frequency     int
	Quality       int
}
