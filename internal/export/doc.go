// Package export snapshots database tables to files in the output directory.
//
// CSV exports dump any exportable table with a header row of column names.
// Avro exports write the department table as an Object Container File with
// a fixed two-field schema. Runs that target the same file are serialized
// through a Locker, and the outcome of the latest run per format is kept in
// a StatusStore.
package export
