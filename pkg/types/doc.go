// Package types defines the entity types, store configuration, the versioned
// Store interface, and standard errors for the Logbook persistence core.
//
// The five collections (students, weekly entries, teams, team memberships,
// team weekly entries) are held in memory as a Dataset and persisted as one
// CSV blob per collection behind a versioned remote object store.
package types
