package seed

import (
	"gorm.io/datatypes"

	models "valuationdb/database/models_pkg"
)

// WatchlistSeed is one company to enroll for news scanning, keyed by ticker.
// Tickers are resolved against marketscrip at seed time; a ticker the
// reference table does not know is skipped with a warning, not an error.
type WatchlistSeed struct {
	Symbol      string
	Priority    models.Priority
	Note        string
	ScanSources datatypes.JSON
}

// WatchlistSeeds returns the companies the news scanner should cover.
// Most entries rely on the scanner's default sources; TATAMOTORS overrides
// them because JLR coverage lives in international outlets.
func WatchlistSeeds() []WatchlistSeed {
	return []WatchlistSeed{
		{Symbol: "RELIANCE", Priority: models.PriorityHigh, Note: "Index heavyweight, track refining and retail segments"},
		{Symbol: "TCS", Priority: models.PriorityHigh, Note: "Large-cap IT bellwether, deal wins move the sector"},
		{Symbol: "INFY", Priority: models.PriorityMedium, Note: "Guidance revisions are the main catalyst"},
		{Symbol: "HDFCBANK", Priority: models.PriorityHigh, Note: "Post-merger deposit trajectory in focus"},
		{Symbol: "ICICIBANK", Priority: models.PriorityMedium, Note: "Watch unsecured book commentary"},
		{Symbol: "MARUTI", Priority: models.PriorityHigh, Note: "Monthly dispatch numbers drive the AUTO group"},
		{
			Symbol:   "TATAMOTORS",
			Priority: models.PriorityHigh,
			Note:     "JLR demand and EV roadmap coverage",
			ScanSources: datatypes.JSON([]byte(
				`["exchange-filings", "reuters-auto", "jlr-investor-room"]`)),
		},
		{Symbol: "M&M", Priority: models.PriorityMedium, Note: "SUV order book and farm equipment cycle"},
		{Symbol: "SUNPHARMA", Priority: models.PriorityMedium, Note: "Specialty pipeline and USFDA updates"},
		{Symbol: "CIPLA", Priority: models.PriorityLow, Note: "Respiratory portfolio news flow"},
		{Symbol: "HINDUNILVR", Priority: models.PriorityHigh, Note: "Staples volume proxy for rural demand"},
		{Symbol: "ITC", Priority: models.PriorityMedium, Note: "Cigarette taxation and hotels demerger follow-ups"},
		{Symbol: "NESTLEIND", Priority: models.PriorityLow, Note: "Premium staples, low news velocity"},
	}
}
