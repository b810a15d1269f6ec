// Package property manages the in-memory collection of property listings.
//
// A listing has a manager, an address, a room count, a total area and a
// price. The Collection assigns ids, validates every record before it
// is stored, and answers sorted listings and aggregate statistics.
//
// # Ids
//
// Ids start at 1 and strictly increase in creation order. They are never
// reused: deleting the newest listing does not lower the next id.
//
// # Thread Safety
//
// All Collection methods are safe for concurrent use. Every
// read-modify-write (id assignment, merge and validate, delete) runs
// under a single write lock, and callers only ever receive copies.
//
// # Usage
//
//	props := property.NewCollection()
//	created, err := props.Create(ctx, property.Fields{
//	    ManagerName: "Anna Smirnova",
//	    Address:     "Pushkina 10",
//	    RoomsCount:  property.Int(4),
//	    TotalArea:   property.Float(98.2),
//	    Price:       property.Int64(8500000),
//	})
//
//	newest, err := props.List(ctx, property.ListOptions{SortBy: "price", Order: "desc"})
package property
