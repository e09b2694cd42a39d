// Package user holds the User aggregate: customers placing orders and staff
// members managing restaurants and order statuses.
//
// Passwords are never stored; only their bcrypt hash is kept.
package user
