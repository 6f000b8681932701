// Package workitems derives concrete channel work items (optimize, set up,
// or verify) from a detection snapshot. Every canonical channel yields
// either a suggestion or an explicit skip with a reason, so downstream
// planners can account for the full channel set.
package workitems
