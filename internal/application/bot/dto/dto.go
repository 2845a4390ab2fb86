// Package dto holds the request and response shapes of the bot lifecycle
// operations.
package dto

// ResetSummary reports what a single reset did.
type ResetSummary struct {
	AirlineID       uint   `json:"airline_id"`
	AirlineName     string `json:"airline_name"`
	RoutesDeleted   int64  `json:"routes_deleted"`
	AircraftDeleted int64  `json:"aircraft_deleted"`
	BasesDeleted    int64  `json:"bases_deleted"`
	AircraftAdded   int    `json:"aircraft_added"`
	HQCreated       bool   `json:"hq_created"`
}

// ResetOutcome is one entry of a batch reset: either a summary or an error
// message, never both.
type ResetOutcome struct {
	AirlineID   uint          `json:"airline_id"`
	AirlineName string        `json:"airline_name"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	Summary     *ResetSummary `json:"summary,omitempty"`
}

// ResetAllResult aggregates a batch reset. Airlines that were committed
// before a later failure stay committed.
type ResetAllResult struct {
	Results        []ResetOutcome `json:"results"`
	NamesSucceeded []string       `json:"names_succeeded"`
}

// CreateBotRequest is the payload for creating a bot airline. AirportIATA,
// when given, takes precedence over CountryCode.
type CreateBotRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	CountryCode string `json:"country_code" binding:"omitempty,len=2,uppercode"`
	AirportIATA string `json:"airport_iata" binding:"omitempty,len=3,uppercode"`
}

// CreateBotResult reports a successful creation.
type CreateBotResult struct {
	AirlineID     uint   `json:"airline_id"`
	AirlineName   string `json:"airline_name"`
	CountryCode   string `json:"country_code"`
	AircraftAdded int    `json:"aircraft_added"`
	HQCreated     bool   `json:"hq_created"`
}

// BotView is one row of the bot listing, including the derived personality.
type BotView struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Balance        string  `json:"balance"`
	Reputation     float64 `json:"reputation"`
	ServiceQuality float64 `json:"service_quality"`
	Personality    string  `json:"personality"`
	RouteCount     int64   `json:"route_count"`
	AircraftCount  int64   `json:"aircraft_count"`
	BaseCount      int64   `json:"base_count"`
}

// BotsSummary aggregates the bot population for reporting.
type BotsSummary struct {
	TotalBots               int64            `json:"total_bots"`
	TotalRoutes             int64            `json:"total_routes"`
	TotalAircraft           int64            `json:"total_aircraft"`
	PersonalityDistribution map[string]int64 `json:"personality_distribution"`
}

// CycleInfo is the current simulation clock with derived week/year.
type CycleInfo struct {
	Cycle int `json:"cycle"`
	Week  int `json:"week"`
	Year  int `json:"year"`
}
