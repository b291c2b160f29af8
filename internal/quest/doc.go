// Package quest defines the Ascend Life Quest demo records (quests and their
// categories) and maps them onto the Firestore documents the mobile app reads.
//
// Document keys keep the names the mobile app already uses (nom, xpRapporte,
// dependantMeteo, ...); only the Go identifiers are English.
package quest
