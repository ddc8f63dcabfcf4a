package models

// DriverLevel scopes a driver to a whole valuation group or a single company.
type DriverLevel string

const (
	DriverLevelGroup   DriverLevel = "GROUP"
	DriverLevelCompany DriverLevel = "COMPANY"
)

// Valid reports whether the level is a known value.
func (l DriverLevel) Valid() bool {
	switch l {
	case DriverLevelGroup, DriverLevelCompany:
		return true
	}
	return false
}

// DriverCategory classifies what kind of factor a driver captures.
type DriverCategory string

const (
	CategoryMacroSignal DriverCategory = "MACRO_SIGNAL"
	CategoryRegulatory  DriverCategory = "REGULATORY"
	CategoryCost        DriverCategory = "COST"
	CategoryDemand      DriverCategory = "DEMAND"
	CategoryCompetitive DriverCategory = "COMPETITIVE"
	CategorySupplyChain DriverCategory = "SUPPLY_CHAIN"
	CategorySentiment   DriverCategory = "SENTIMENT"
)

// Valid reports whether the category is a known value.
func (c DriverCategory) Valid() bool {
	switch c {
	case CategoryMacroSignal, CategoryRegulatory, CategoryCost, CategoryDemand,
		CategoryCompetitive, CategorySupplyChain, CategorySentiment:
		return true
	}
	return false
}

// ValuationGroup is the sector tag drivers and companies are organized under.
type ValuationGroup string

const (
	GroupAuto                  ValuationGroup = "AUTO"
	GroupTechnology            ValuationGroup = "TECHNOLOGY"
	GroupHealthcare            ValuationGroup = "HEALTHCARE"
	GroupConsumerStaples       ValuationGroup = "CONSUMER_STAPLES"
	GroupConsumerDiscretionary ValuationGroup = "CONSUMER_DISCRETIONARY"
	GroupEnergy                ValuationGroup = "ENERGY"
	GroupFinancials            ValuationGroup = "FINANCIALS"
	GroupIndustrials           ValuationGroup = "INDUSTRIALS"
	GroupMaterials             ValuationGroup = "MATERIALS"
	GroupUtilities             ValuationGroup = "UTILITIES"
	GroupTelecom               ValuationGroup = "TELECOM"
)

// ValuationGroups returns every known sector tag, in display order.
func ValuationGroups() []ValuationGroup {
	return []ValuationGroup{
		GroupAuto,
		GroupTechnology,
		GroupHealthcare,
		GroupConsumerStaples,
		GroupConsumerDiscretionary,
		GroupEnergy,
		GroupFinancials,
		GroupIndustrials,
		GroupMaterials,
		GroupUtilities,
		GroupTelecom,
	}
}

// Valid reports whether the group is a known sector tag.
func (g ValuationGroup) Valid() bool {
	for _, known := range ValuationGroups() {
		if g == known {
			return true
		}
	}
	return false
}

// ImpactDirection records which way a driver pushes the valuation.
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "POSITIVE"
	ImpactNegative ImpactDirection = "NEGATIVE"
	ImpactMixed    ImpactDirection = "MIXED"
)

// Valid reports whether the direction is a known value.
func (d ImpactDirection) Valid() bool {
	switch d {
	case ImpactPositive, ImpactNegative, ImpactMixed:
		return true
	}
	return false
}

// Trend records how a driver's influence has been moving.
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendStable  Trend = "STABLE"
	TrendFalling Trend = "FALLING"
)

// Valid reports whether the trend is a known value.
func (t Trend) Valid() bool {
	switch t {
	case TrendRising, TrendStable, TrendFalling:
		return true
	}
	return false
}

// Priority ranks watchlist entries for the downstream news scanner.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Platform identifies where a social post is published. PlatformBoth marks a
// post that goes out on Twitter and LinkedIn with per-network content.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformBoth     Platform = "both"
)

// Valid reports whether the platform is a known value.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedIn, PlatformBoth:
		return true
	}
	return false
}
