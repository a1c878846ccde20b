package relq

import "github.com/zoobzio/capitan"

// Event keys for structured logging.
var (
	KeyTable       = capitan.NewStringKey("table")
	KeySQL         = capitan.NewStringKey("sql")
	KeyAssociation = capitan.NewStringKey("association")
	KeyError       = capitan.NewStringKey("error")
	KeyDuration    = capitan.NewDurationKey("duration")
)

// Signals emitted by relq.
var (
	QuerierCreated = capitan.NewSignal("relq.querier.created", "Querier instance created")
	QueryExecuted  = capitan.NewSignal("relq.query.executed", "Query executed")
	QueryFailed    = capitan.NewSignal("relq.query.failed", "Query failed")
	PreloadPlanned = capitan.NewSignal("relq.preload.planned", "Preload follow-up query planned")
)
