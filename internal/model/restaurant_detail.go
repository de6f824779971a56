package model

// RestaurantDetail holds the restaurant's public facts from the
// `restaurant_details` table. At most one row is meaningful; the
// repository always reads and writes the first row.
type RestaurantDetail struct {
	ID       int64  // restaurant_details.id
	Name     string // restaurant_details.name
	Location string // restaurant_details.location
	Contact  string // restaurant_details.contact
}
