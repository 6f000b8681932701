// Package utils contains small internal helpers shared across the
// footprint packages: safe JSON stringification for log and report output
// and string truncation for oversized page fragments.
package utils
