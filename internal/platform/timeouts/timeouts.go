// Package timeouts defines the timeout constants shared by questseed commands.
package timeouts

import "time"

// DocumentWrite caps a single document write, including the SDK's own
// transport-level retries.
const DocumentWrite = 30 * time.Second

// LedgerWrite caps recording one upload outcome in the local ledger.
const LedgerWrite = 5 * time.Second

// TelemetryShutdown limits how long span flushing may take on exit.
const TelemetryShutdown = 5 * time.Second
