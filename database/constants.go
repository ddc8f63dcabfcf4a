package database

// Weight normalization constants
const (
	// WeightPrecision is the number of decimals weights are rounded to
	// when a group is normalized.
	WeightPrecision = 3

	// WeightSumTarget is what every (group, level) weight slice must sum to
	// after normalization.
	WeightSumTarget = 1.0

	// WeightSumTolerance is the allowed drift from WeightSumTarget before a
	// group is flagged by verification. Rounding 3-decimal weights can move
	// a sum by at most half a thousandth per row.
	WeightSumTolerance = 0.002
)

// Verification report constants
const (
	// PercentPrecision is the number of decimals shown for per-driver
	// weight percentages in verification output.
	PercentPrecision = 1
)

// Watchlist constants
const (
	// NotesSeparator joins existing notes with new ones when a seed batch
	// touches an entry that already exists.
	NotesSeparator = " | "

	// DefaultAddedBy is recorded on entries created by the seeder.
	DefaultAddedBy = "seeder"

	// NormalizerActor is stamped into updated_by when a normalization pass
	// rewrites a group's weights.
	NormalizerActor = "normalizer"
)

// Column size limits enforced by the schema
const (
	SearchQueryMaxLen = 200
	HeadlineMaxLen    = 300
	DriverNameMaxLen  = 150
)

// Query limits
const (
	DefaultLimit = 50
	MaxLimit     = 200
)
