// Package repository provides the composite-key association store shared by
// every junction table: a Table configuration record, the soft-delete CRUD
// engine built on Bun, and the logging/tracing wrapper every operation runs
// through.
package repository
