package property

// SampleProperties returns the listings loaded at startup when seeding is enabled.
func SampleProperties() []Fields {
	return []Fields{
		{
			ManagerName: "Ivan Petrov",
			Address:     "Lenina 1",
			RoomsCount:  Int(3),
			TotalArea:   Float(75.5),
			Price:       Int64(5000000),
		},
		{
			ManagerName: "Anna Smirnova",
			Address:     "Pushkina 10",
			RoomsCount:  Int(4),
			TotalArea:   Float(98.2),
			Price:       Int64(8500000),
		},
	}
}
