package night

import "expvar"

var (
	metricLinesReadTotal          = expvar.NewInt("night_lines_read_total")
	metricLinesInertTotal         = expvar.NewInt("night_lines_inert_total")
	metricHandsBuiltTotal         = expvar.NewInt("night_hands_built_total")
	metricHandsNoSnapshotTotal    = expvar.NewInt("night_hands_no_snapshot_total")
	metricLedgerEntriesTotal      = expvar.NewInt("night_ledger_entries_total")
	metricSessionsTotal           = expvar.NewInt("night_sessions_total")
	metricSessionsFailedTotal     = expvar.NewInt("night_sessions_failed_total")
	metricSessionsImbalancedTotal = expvar.NewInt("night_sessions_imbalanced_total")
)
