package usecase

import "expvar"

var (
	recommendationStats = expvar.NewMap("recommendations")
	quoteStats          = expvar.NewMap("quotes")
)
