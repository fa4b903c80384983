// Package docs Places Directory Service API.
//
// Service for browsing city places by category with live open/closed status.
// Keeps a directory of cafes, restaurants, parks and bars, evaluates each
// place's weekly opening hours against the reference-timezone clock and
// synchronizes map markers for the selected category.
//
// Main capabilities:
// - Category summaries with open/total place counts
// - Normalized place lists per category with current open status
// - Single-category selection with marker reconciliation deltas
// - Map camera state, independent of marker synchronization
// - Manual and periodic re-evaluation of the directory
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
