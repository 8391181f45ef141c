// Package store defines persistence interfaces and shared storage errors.
// Implementations live under internal/platform; services depend only on the
// interfaces defined here.
package store
