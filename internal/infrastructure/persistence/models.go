// Package persistence contains the gorm models for the simulation schema
// and the repository implementations over them. The schema is owned by the
// external simulation; this package maps it but never migrates it.
package persistence

import "github.com/shopspring/decimal"

// AirlineModel maps the airline table.
type AirlineModel struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name;size:255"`
	AirlineType int    `gorm:"column:airline_type"`
}

func (AirlineModel) TableName() string { return "airline" }

// AirlineInfoModel maps the airline_info table. Balance is a DECIMAL
// column; it is scanned into decimal.Decimal, never a float.
type AirlineInfoModel struct {
	Airline              uint            `gorm:"primaryKey;column:airline"`
	Balance              decimal.Decimal `gorm:"column:balance;type:decimal(20,2)"`
	Reputation           float64         `gorm:"column:reputation"`
	ServiceQuality       float64         `gorm:"column:service_quality"`
	TargetServiceQuality float64         `gorm:"column:target_service_quality"`
	CountryCode          string          `gorm:"column:country_code;size:2"`
	Initialized          bool            `gorm:"column:initialized"`
}

func (AirlineInfoModel) TableName() string { return "airline_info" }

// AirlineBaseModel maps the airline_base table.
type AirlineBaseModel struct {
	Airport      uint   `gorm:"primaryKey;column:airport"`
	Airline      uint   `gorm:"primaryKey;column:airline"`
	Scale        int    `gorm:"column:scale"`
	FoundedCycle int    `gorm:"column:founded_cycle"`
	Headquarter  bool   `gorm:"column:headquarter"`
	Country      string `gorm:"column:country;size:2"`
}

func (AirlineBaseModel) TableName() string { return "airline_base" }

// AirplaneModel maps the airplane table.
type AirplaneModel struct {
	ID               uint    `gorm:"primaryKey;column:id"`
	Model            uint    `gorm:"column:model"`
	Owner            uint    `gorm:"column:owner"`
	ConstructedCycle int     `gorm:"column:constructed_cycle"`
	PurchasedCycle   int     `gorm:"column:purchased_cycle"`
	Condition        float64 `gorm:"column:airplane_condition"`
	DepreciationRate float64 `gorm:"column:depreciation_rate"`
	Value            int64   `gorm:"column:value"`
	IsSold           bool    `gorm:"column:is_sold"`
	DealerRatio      float64 `gorm:"column:dealer_ratio"`
	Home             *uint   `gorm:"column:home"`
	PurchaseRate     float64 `gorm:"column:purchase_rate"`
	Version          int     `gorm:"column:version"`
}

func (AirplaneModel) TableName() string { return "airplane" }

// AirplaneConfigurationModel maps the airplane_configuration table. Rows
// reference an airplane and must go before it.
type AirplaneConfigurationModel struct {
	ID       uint `gorm:"primaryKey;column:id"`
	Airplane uint `gorm:"column:airplane"`
}

func (AirplaneConfigurationModel) TableName() string { return "airplane_configuration" }

// LinkModel maps the link table.
type LinkModel struct {
	ID          uint `gorm:"primaryKey;column:id"`
	Airline     uint `gorm:"column:airline"`
	FromAirport uint `gorm:"column:from_airport"`
	ToAirport   uint `gorm:"column:to_airport"`
	Distance    int  `gorm:"column:distance"`
	Frequency   int  `gorm:"column:frequency"`
	Quality     int  `gorm:"column:quality"`
}

func (LinkModel) TableName() string { return "link" }

// LinkAssignmentModel maps the link_assignment table.
type LinkAssignmentModel struct {
	ID   uint `gorm:"primaryKey;column:id"`
	Link uint `gorm:"column:link"`
}

func (LinkAssignmentModel) TableName() string { return "link_assignment" }

// LinkConsumptionModel maps the link_consumption table.
type LinkConsumptionModel struct {
	ID    uint `gorm:"primaryKey;column:id"`
	Link  uint `gorm:"column:link"`
	Cycle int  `gorm:"column:cycle"`
}

func (LinkConsumptionModel) TableName() string { return "link_consumption" }

// AirlineAppealModel maps the airline_appeal table (loyalty/awareness per
// airport).
type AirlineAppealModel struct {
	Airport   uint    `gorm:"primaryKey;column:airport"`
	Airline   uint    `gorm:"primaryKey;column:airline"`
	Loyalty   float64 `gorm:"column:loyalty"`
	Awareness float64 `gorm:"column:awareness"`
}

func (AirlineAppealModel) TableName() string { return "airline_appeal" }

// AirportModel maps the read-only airport reference table.
type AirportModel struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	IATA        string `gorm:"column:iata;size:3"`
	Name        string `gorm:"column:name"`
	City        string `gorm:"column:city"`
	CountryCode string `gorm:"column:country_code;size:2"`
	Size        int    `gorm:"column:airport_size"`
	Population  int64  `gorm:"column:population"`
}

func (AirportModel) TableName() string { return "airport" }

// AircraftTypeModel maps the read-only airplane_model catalog table.
type AircraftTypeModel struct {
	ID    uint   `gorm:"primaryKey;column:id"`
	Name  string `gorm:"column:name"`
	Price int64  `gorm:"column:price"`
}

func (AircraftTypeModel) TableName() string { return "airplane_model" }

// CycleModel maps the single-row cycle table holding the simulation clock.
type CycleModel struct {
	Cycle int `gorm:"column:cycle"`
}

func (CycleModel) TableName() string { return "cycle" }
