// Package detect fuses weak, noisy signals from a page's HTML and its
// embedded structured data into a calibrated presence judgment for each
// social channel and for the Google Business Profile.
//
// Detection runs two independent passes over the supplied inputs: an HTML
// pass that classifies every anchor by DOM position (header, footer, body)
// and matches its target against per-network URL pattern tables, and a
// structured-data pass that inspects sameAs lists, hasMap properties, and
// url/@id fields of local-business-typed objects. Observations from both
// passes are merged per channel without losing provenance; confidence is
// the capped sum of per-source weights, and status is a deterministic
// threshold lookup on confidence.
//
// The main entry point is [Detector.Detect], which returns an immutable
// [Snapshot] covering every known network. Detection never performs I/O,
// never calls a model, and never fails on malformed page data: bad
// fragments are skipped individually and logged through the observability
// layer.
package detect
