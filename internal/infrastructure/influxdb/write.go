package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names.
const (
	measurementEvents = "collection_events"
	measurementStats  = "property_stats"
)

// WriteCollectionEvent records one mutation of a collection together with
// the collection size after it.
//
// Example point:
//
//	collection_events,resource=property,action=created size=3i,count=1i
func (c *Client) WriteCollectionEvent(resource, action string, size int) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(newEventPoint(resource, action, size, time.Now()))
}

// WritePropertyStats records a snapshot of the property aggregates.
// Keys of values become field names, e.g. price_avg or total_area_max.
func (c *Client) WritePropertyStats(count int, values map[string]float64) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(newStatsPoint(count, values, time.Now()))
}

func newEventPoint(resource, action string, size int, ts time.Time) *write.Point {
	return write.NewPoint(
		measurementEvents,
		map[string]string{
			"resource": resource,
			"action":   action,
		},
		map[string]any{
			"size":  size,
			"count": 1,
		},
		ts,
	)
}

func newStatsPoint(count int, values map[string]float64, ts time.Time) *write.Point {
	fields := make(map[string]any, len(values)+1)
	for k, v := range values {
		fields[k] = v
	}
	fields["count"] = count

	return write.NewPoint(measurementStats, map[string]string{"resource": "property"}, fields, ts)
}
