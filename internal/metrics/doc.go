// Package metrics exposes Prometheus metrics on a dedicated HTTP endpoint.
//
// Each service gets its own registry wrapped with a constant service label.
// Beyond the default Go and process collectors, the package ships counters
// and histograms for HTTP traffic, match result counts and embedding cache
// behavior, plus factories for registering additional metrics at runtime.
package metrics
