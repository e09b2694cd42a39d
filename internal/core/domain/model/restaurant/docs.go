// Package restaurant holds the Restaurant aggregate and the MenuItem entity.
//
// A menu item always belongs to exactly one restaurant; deleting the
// restaurant deletes its menu items. Text fields are trimmed and bounded by
// the column sizes of the restaurant and menu_item tables.
package restaurant
