// Package database provides the connection provider used by the junction
// stores: connection management for MySQL, PostgreSQL and SQLite on Bun,
// YAML/env configuration, the Logger contract, SQL error classification and
// bootstrap of the registered junction tables.
package database
