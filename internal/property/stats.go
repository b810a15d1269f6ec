package property

import "math"

// FieldStats holds the aggregates of one numeric field.
type FieldStats struct {
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

// Stats maps a numeric field name to its aggregates.
type Stats map[string]FieldStats

// Flat returns the stats keyed as "<field>_avg", "<field>_max" and "<field>_min".
func (s Stats) Flat() map[string]float64 {
	flat := make(map[string]float64, len(s)*3)
	for field, fs := range s {
		flat[field+"_avg"] = fs.Avg
		flat[field+"_max"] = fs.Max
		flat[field+"_min"] = fs.Min
	}
	return flat
}

// numericValue extracts a numeric field as float64.
func numericValue(p Property, field string) (float64, bool) {
	switch field {
	case FieldRoomsCount:
		return float64(p.RoomsCount), true
	case FieldTotalArea:
		return p.TotalArea, true
	case FieldPrice:
		return float64(p.Price), true
	default:
		return 0, false
	}
}

// computeStats aggregates NumericFields over items. A field with no
// finite values is left out.
func computeStats(items []Property) Stats {
	stats := make(Stats, len(NumericFields))

	for _, field := range NumericFields {
		var (
			sum, lo, hi float64
			n           int
		)
		for _, p := range items {
			v, ok := numericValue(p, field)
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if n == 0 || v < lo {
				lo = v
			}
			if n == 0 || v > hi {
				hi = v
			}
			sum += v
			n++
		}
		if n == 0 {
			continue
		}
		stats[field] = FieldStats{Avg: sum / float64(n), Max: hi, Min: lo}
	}

	return stats
}
