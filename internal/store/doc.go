// Package store joins the vector index with the collaboration history into
// a single ranking surface.
//
// The store owns the final-score formula: 60% semantic similarity from the
// vector search, 40% historical success rate from recorded collaborations,
// with a neutral 0.5 historical component for artists that have no history.
// Callers never see the raw index ordering, only the blended one.
package store
