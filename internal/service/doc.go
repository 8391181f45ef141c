// Package service contains the application services: paginated CRUD over
// users, categories, and products. The authentication flow lives in the
// nested auth package.
package service
