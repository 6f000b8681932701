// Package score turns a detection snapshot into the digital-footprint
// subscores and composite score used by downstream reports. Formulas are
// status-banded rather than continuous to avoid false precision, and fully
// deterministic: the same snapshot always yields the same numbers.
package score
