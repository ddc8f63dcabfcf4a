package migrations

// All returns every schema migration in apply order. New migrations are
// appended here; the order never changes once a migration has shipped.
func All() []Migration {
	return []Migration{
		&baseSchema{},
		&socialPlatformBoth{},
		&timelineSearchQuery{},
		&newsWatchlist{},
	}
}
