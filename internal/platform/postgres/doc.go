// Package postgres provides PostgreSQL implementations of the store
// interfaces using database/sql with the pgx stdlib driver. Driver errors
// are mapped to store errors in one place (MapError) so services never see
// pgconn details.
package postgres
