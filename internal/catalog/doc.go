// Package catalog ingests artist catalog CSV exports into the vector index.
//
// A catalog export has artist_name and artist_tags columns. Entries are
// embedded in concurrent batches and upserted with name-derived point IDs,
// so re-importing an export is idempotent.
package catalog
