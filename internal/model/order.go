package model

// Order is a placed order from the `orders` table. ItemName is a
// denormalized copy of the menu item's name captured at order time,
// so later menu edits never rewrite order history. Orders are
// immutable once created; there is no update or cancel operation.
//
// Fields:
//  ID       – primary key identifier.
//  UserID   – ordering user.
//  ItemID   – referenced menu item. Only the checked intake path
//             verifies the item exists.
//  ItemName – item name as recorded at order time.
//  Quantity – positive number of units ordered.
type Order struct {
	ID       int64  // orders.id
	UserID   int64  // orders.user_id
	ItemID   int64  // orders.item_id
	ItemName string // orders.item_name
	Quantity int    // orders.quantity
}
