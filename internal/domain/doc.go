// Package domain contains the core entities of the shop: users, categories,
// and products. Entities validate their own invariants; persistence and
// transport concerns live in other packages.
package domain
