package entities

// Catalog holds the bike registry and every part offered for those bikes.
// Parts are kept in catalog order: stage first, then declaration order.
type Catalog struct {
	Bikes []Bike
	Parts []Part
}
