package property

// Property is a stored listing.
type Property struct {
	ID          int     `json:"id"`
	ManagerName string  `json:"manager_name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	RoomsCount  int     `json:"rooms_count" validate:"gte=0"`
	TotalArea   float64 `json:"total_area" validate:"gte=0"`
	Price       int64   `json:"price" validate:"gte=0"`
}

// Fields is the input for Create. Every field is required; the numeric
// fields are pointers so a missing value is distinguishable from zero.
// Any client-supplied id is ignored.
type Fields struct {
	ManagerName string   `json:"manager_name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	RoomsCount  *int     `json:"rooms_count" validate:"required,gte=0"`
	TotalArea   *float64 `json:"total_area" validate:"required,gte=0"`
	Price       *int64   `json:"price" validate:"required,gte=0"`
}

// Patch is the input for Update. Nil fields are left unchanged.
type Patch struct {
	ManagerName *string  `json:"manager_name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	RoomsCount  *int     `json:"rooms_count,omitempty"`
	TotalArea   *float64 `json:"total_area,omitempty"`
	Price       *int64   `json:"price,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.ManagerName == nil && p.Address == nil &&
		p.RoomsCount == nil && p.TotalArea == nil && p.Price == nil
}

// Changed returns the JSON names of the fields set in p.
func (p Patch) Changed() []string {
	var names []string
	if p.ManagerName != nil {
		names = append(names, FieldManagerName)
	}
	if p.Address != nil {
		names = append(names, FieldAddress)
	}
	if p.RoomsCount != nil {
		names = append(names, FieldRoomsCount)
	}
	if p.TotalArea != nil {
		names = append(names, FieldTotalArea)
	}
	if p.Price != nil {
		names = append(names, FieldPrice)
	}
	return names
}

// apply returns p merged onto base.
func (p Patch) apply(base Property) Property {
	if p.ManagerName != nil {
		base.ManagerName = *p.ManagerName
	}
	if p.Address != nil {
		base.Address = *p.Address
	}
	if p.RoomsCount != nil {
		base.RoomsCount = *p.RoomsCount
	}
	if p.TotalArea != nil {
		base.TotalArea = *p.TotalArea
	}
	if p.Price != nil {
		base.Price = *p.Price
	}
	return base
}

// Field names as they appear on the wire and in sort_by.
const (
	FieldID          = "id"
	FieldManagerName = "manager_name"
	FieldAddress     = "address"
	FieldRoomsCount  = "rooms_count"
	FieldTotalArea   = "total_area"
	FieldPrice       = "price"
)

// SortFields lists the accepted sort_by values.
var SortFields = []string{
	FieldID, FieldManagerName, FieldAddress, FieldRoomsCount, FieldTotalArea, FieldPrice,
}

// NumericFields lists the fields aggregated by Stats, in output order.
var NumericFields = []string{FieldRoomsCount, FieldTotalArea, FieldPrice}

// Order values for ListOptions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListOptions controls List. An unknown or empty SortBy keeps insertion
// order; any Order other than "desc" (case-insensitive) sorts ascending.
type ListOptions struct {
	SortBy string
	Order  string
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
