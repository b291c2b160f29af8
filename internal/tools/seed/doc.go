// Package seed uploads the Ascend Life Quest demo quests and categories to
// Firestore.
//
// Every record becomes one document write. Writes are dispatched
// concurrently and each one reports back through a success or failure
// callback; failures are logged (and optionally recorded in a local ledger)
// but never returned to the caller, retried, or rolled back.
package seed
