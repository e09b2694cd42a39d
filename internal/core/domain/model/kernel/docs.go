// Package kernel provides the value objects shared by every aggregate of the food
// delivery domain:
//   - UUID: identifier of restaurants, menu items, users and orders
//   - Money: prices and order totals in minor currency units
//
// Both are immutable and safe for concurrent use. Their zero values are invalid and
// must be rejected through Validate.
package kernel
