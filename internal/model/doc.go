// Package model defines the data structures used throughout givr.
//
// All entities are owned by the platform server; the structs here are
// transient client-side copies decoded straight from the REST API and
// replaced wholesale on every reload. JSON tags match the wire format
// (snake_case) exactly.
//
// # Campaign
//
// The [Campaign] struct represents a fundraising campaign:
//
//	type Campaign struct {
//	    ID            int64          // Server-assigned identifier
//	    Title         string         // Campaign headline
//	    TargetAmount  float64        // Fundraising goal
//	    CurrentAmount float64        // Accumulated donations (may exceed the target)
//	    Status        CampaignStatus // active, completed or cancelled
//	    ...
//	}
//
// Display arithmetic lives on the types: [Campaign.ProgressPercent] is the
// unclamped percentage used for textual labels, while
// [Campaign.ProgressRatio] is clamped to [0, 1] for bar widths. Overfunded
// campaigns therefore show labels above 100% against a full bar.
package model
