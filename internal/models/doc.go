// Package models defines the core domain models for the kleurenwiezen tracker.
//
// # Models
//
//   - Group: a card group, reached through its join code
//   - Player: one of the group's regulars
//   - Session: one evening of play ("avond"), identified by its date
//   - Round: one scored hand within a session
//   - Score: one player's signed points for a round
//   - SessionNote: a free-text note attached to a session
//   - User: an account that can own groups
//
// # Design Principles
//
// 1. **Derived totals**: running totals are recomputed from scores, never stored
// 2. **Round atomicity**: a round is only meaningful with its four scores
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
// 4. **Immutable history**: rounds and scores are deleted, never edited
package models
