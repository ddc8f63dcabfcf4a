package seed

import (
	models "valuationdb/database/models_pkg"
)

// Seed batch source tags. The tag is stored in each driver's source column
// so a row can always be traced back to the batch that introduced it.
const (
	SourceBaseline      = "baseline-2025h1"
	SourceSectorRefresh = "sector-refresh-2025h2"
)

// DriverBatch is one per-group insert batch. Batches are inserted atomically,
// so a group either gets its whole batch or none of it.
type DriverBatch struct {
	Group   models.ValuationGroup
	Drivers []models.Driver
}

// BaselineDriverBatches returns the first seeding wave: the initial driver
// set for each covered valuation group. Raw weights are analyst proportions;
// normalization rescales them after the sector refresh lands on top.
func BaselineDriverBatches() []DriverBatch {
	return []DriverBatch{
		{
			Group: models.GroupAuto,
			Drivers: []models.Driver{
				driver(models.GroupAuto, "Passenger vehicle demand cycle", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.14, SourceBaseline),
				driver(models.GroupAuto, "Raw material cost basket", models.CategoryCost, models.ImpactNegative, models.TrendStable, 0.12, SourceBaseline),
				driver(models.GroupAuto, "Interest rate trajectory", models.CategoryMacroSignal, models.ImpactNegative, models.TrendStable, 0.10, SourceBaseline),
				driver(models.GroupAuto, "Rural income recovery", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.09, SourceBaseline),
				driver(models.GroupAuto, "Emission norm compliance cost", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.09, SourceBaseline),
				driver(models.GroupAuto, "Export market traction", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.08, SourceBaseline),
				driver(models.GroupAuto, "Discounting intensity", models.CategoryCompetitive, models.ImpactNegative, models.TrendStable, 0.06, SourceBaseline),
			},
		},
		{
			Group: models.GroupConsumerStaples,
			Drivers: []models.Driver{
				driver(models.GroupConsumerStaples, "Volume growth in core categories", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.16, SourceBaseline),
				driver(models.GroupConsumerStaples, "Palm oil and agri input costs", models.CategoryCost, models.ImpactNegative, models.TrendStable, 0.14, SourceBaseline),
				driver(models.GroupConsumerStaples, "Rural demand recovery", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.12, SourceBaseline),
				driver(models.GroupConsumerStaples, "Pricing power and premiumization", models.CategoryCompetitive, models.ImpactPositive, models.TrendStable, 0.12, SourceBaseline),
				driver(models.GroupConsumerStaples, "Distribution network expansion", models.CategoryCompetitive, models.ImpactPositive, models.TrendStable, 0.12, SourceBaseline),
				driver(models.GroupConsumerStaples, "Monsoon and crop outlook", models.CategoryMacroSignal, models.ImpactMixed, models.TrendStable, 0.08, SourceBaseline),
				driver(models.GroupConsumerStaples, "Packaging cost inflation", models.CategoryCost, models.ImpactNegative, models.TrendStable, 0.08, SourceBaseline),
				driver(models.GroupConsumerStaples, "GST rate stability", models.CategoryRegulatory, models.ImpactMixed, models.TrendStable, 0.06, SourceBaseline),
			},
		},
		{
			Group: models.GroupTechnology,
			Drivers: []models.Driver{
				driver(models.GroupTechnology, "Deal pipeline and order book", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.16, SourceBaseline),
				driver(models.GroupTechnology, "US and EU tech spending cycle", models.CategoryMacroSignal, models.ImpactMixed, models.TrendStable, 0.13, SourceBaseline),
				driver(models.GroupTechnology, "Attrition and wage inflation", models.CategoryCost, models.ImpactNegative, models.TrendFalling, 0.12, SourceBaseline),
				driver(models.GroupTechnology, "Currency tailwind", models.CategoryMacroSignal, models.ImpactPositive, models.TrendStable, 0.12, SourceBaseline),
				driver(models.GroupTechnology, "Vendor consolidation wins", models.CategoryCompetitive, models.ImpactPositive, models.TrendStable, 0.09, SourceBaseline),
				driver(models.GroupTechnology, "Visa and onsite cost regime", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.08, SourceBaseline),
			},
		},
		{
			Group: models.GroupHealthcare,
			Drivers: []models.Driver{
				driver(models.GroupHealthcare, "US generics pricing environment", models.CategoryCompetitive, models.ImpactMixed, models.TrendStable, 0.16, SourceBaseline),
				driver(models.GroupHealthcare, "Domestic formulation growth", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.15, SourceBaseline),
				driver(models.GroupHealthcare, "USFDA inspection outcomes", models.CategoryRegulatory, models.ImpactMixed, models.TrendStable, 0.14, SourceBaseline),
				driver(models.GroupHealthcare, "API input cost trend", models.CategoryCost, models.ImpactNegative, models.TrendStable, 0.11, SourceBaseline),
				driver(models.GroupHealthcare, "Specialty pipeline progress", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.10, SourceBaseline),
				driver(models.GroupHealthcare, "Hospital occupancy and ARPOB", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.10, SourceBaseline),
			},
		},
		{
			Group: models.GroupEnergy,
			Drivers: []models.Driver{
				driver(models.GroupEnergy, "Crude price band", models.CategoryMacroSignal, models.ImpactMixed, models.TrendStable, 0.18, SourceBaseline),
				driver(models.GroupEnergy, "Refining margin cycle", models.CategoryMacroSignal, models.ImpactMixed, models.TrendStable, 0.15, SourceBaseline),
				driver(models.GroupEnergy, "Fuel marketing margin regulation", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.13, SourceBaseline),
				driver(models.GroupEnergy, "Gas demand growth", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.12, SourceBaseline),
				driver(models.GroupEnergy, "Capex discipline", models.CategoryCost, models.ImpactPositive, models.TrendStable, 0.10, SourceBaseline),
				driver(models.GroupEnergy, "Windfall tax regime", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.10, SourceBaseline),
			},
		},
		{
			Group: models.GroupFinancials,
			Drivers: []models.Driver{
				driver(models.GroupFinancials, "Credit growth momentum", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.15, SourceBaseline),
				driver(models.GroupFinancials, "Net interest margin trajectory", models.CategoryMacroSignal, models.ImpactMixed, models.TrendStable, 0.14, SourceBaseline),
				driver(models.GroupFinancials, "Asset quality and slippages", models.CategoryMacroSignal, models.ImpactPositive, models.TrendStable, 0.13, SourceBaseline),
				driver(models.GroupFinancials, "Deposit repricing pressure", models.CategoryCost, models.ImpactNegative, models.TrendRising, 0.12, SourceBaseline),
				driver(models.GroupFinancials, "RBI policy stance", models.CategoryRegulatory, models.ImpactMixed, models.TrendStable, 0.10, SourceBaseline),
				driver(models.GroupFinancials, "Fee income diversification", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.09, SourceBaseline),
				driver(models.GroupFinancials, "Fintech competition in payments", models.CategoryCompetitive, models.ImpactNegative, models.TrendRising, 0.07, SourceBaseline),
			},
		},
	}
}

// SectorRefreshBatches returns the second seeding wave: drivers surfaced by
// the sector refresh review. Every batch lands on a group that already has
// baseline drivers, which is exactly what normalization exists for.
func SectorRefreshBatches() []DriverBatch {
	return []DriverBatch{
		{
			Group: models.GroupAuto,
			Drivers: []models.Driver{
				driver(models.GroupAuto, "EV adoption curve", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.08, SourceSectorRefresh),
				driver(models.GroupAuto, "Semiconductor supply normalization", models.CategorySupplyChain, models.ImpactPositive, models.TrendRising, 0.07, SourceSectorRefresh),
				driver(models.GroupAuto, "PLI scheme incentives", models.CategoryRegulatory, models.ImpactPositive, models.TrendStable, 0.06, SourceSectorRefresh),
				driver(models.GroupAuto, "Battery cell localization", models.CategorySupplyChain, models.ImpactPositive, models.TrendRising, 0.06, SourceSectorRefresh),
				driver(models.GroupAuto, "Retail financing availability", models.CategoryMacroSignal, models.ImpactPositive, models.TrendStable, 0.05, SourceSectorRefresh),
			},
		},
		{
			Group: models.GroupConsumerStaples,
			Drivers: []models.Driver{
				driver(models.GroupConsumerStaples, "Quick commerce channel shift", models.CategoryCompetitive, models.ImpactMixed, models.TrendRising, 0.07, SourceSectorRefresh),
				driver(models.GroupConsumerStaples, "Private label competition", models.CategoryCompetitive, models.ImpactNegative, models.TrendRising, 0.05, SourceSectorRefresh),
			},
		},
		{
			Group: models.GroupTechnology,
			Drivers: []models.Driver{
				driver(models.GroupTechnology, "GenAI service adoption", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.13, SourceSectorRefresh),
				driver(models.GroupTechnology, "Cloud migration backlog", models.CategoryDemand, models.ImpactPositive, models.TrendStable, 0.10, SourceSectorRefresh),
				driver(models.GroupTechnology, "Pricing pressure from global peers", models.CategoryCompetitive, models.ImpactNegative, models.TrendStable, 0.07, SourceSectorRefresh),
			},
		},
		{
			Group: models.GroupHealthcare,
			Drivers: []models.Driver{
				driver(models.GroupHealthcare, "Biosimilar launch calendar", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.10, SourceSectorRefresh),
				driver(models.GroupHealthcare, "Trade margin rationalization", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.08, SourceSectorRefresh),
				driver(models.GroupHealthcare, "CDMO outsourcing tailwind", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.06, SourceSectorRefresh),
			},
		},
		{
			Group: models.GroupEnergy,
			Drivers: []models.Driver{
				driver(models.GroupEnergy, "Renewables capacity pivot", models.CategoryDemand, models.ImpactPositive, models.TrendRising, 0.08, SourceSectorRefresh),
				driver(models.GroupEnergy, "Green hydrogen policy support", models.CategoryRegulatory, models.ImpactPositive, models.TrendRising, 0.08, SourceSectorRefresh),
				driver(models.GroupEnergy, "LNG import price volatility", models.CategorySupplyChain, models.ImpactNegative, models.TrendStable, 0.06, SourceSectorRefresh),
			},
		},
		{
			Group: models.GroupFinancials,
			Drivers: []models.Driver{
				driver(models.GroupFinancials, "Unsecured lending risk weights", models.CategoryRegulatory, models.ImpactNegative, models.TrendStable, 0.08, SourceSectorRefresh),
				driver(models.GroupFinancials, "Digital sourcing cost advantage", models.CategoryCompetitive, models.ImpactPositive, models.TrendRising, 0.07, SourceSectorRefresh),
				driver(models.GroupFinancials, "Retail participation sentiment", models.CategorySentiment, models.ImpactPositive, models.TrendStable, 0.05, SourceSectorRefresh),
			},
		},
	}
}

func driver(group models.ValuationGroup, name string, category models.DriverCategory,
	direction models.ImpactDirection, trend models.Trend, weight float64, source string) models.Driver {
	return models.Driver{
		ValuationGroup:  group,
		DriverLevel:     models.DriverLevelGroup,
		DriverName:      name,
		Category:        category,
		ImpactDirection: direction,
		Weight:          weight,
		Trend:           trend,
		Source:          source,
	}
}
