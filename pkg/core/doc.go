// Package core defines the shared language of the leaguerank system.
//
// This package contains:
//   - Domain entities (Game, Standing)
//   - League scoring constants (points for win/draw/loss)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
