package model

// MenuItem is a catalog record from the `menu_items` table. The core
// order path only reads the catalog; rows are managed through the
// admin surface.
//
// Fields:
//  ID    – primary key identifier.
//  Name  – dish name shown to customers.
//  Price – non-negative price in the restaurant's currency.
type MenuItem struct {
	ID    int64   // menu_items.id
	Name  string  // menu_items.name
	Price float64 // menu_items.price
}
