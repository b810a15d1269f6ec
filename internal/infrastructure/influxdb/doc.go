// Package influxdb records Estate Core collection activity in InfluxDB.
//
// Two measurements are written:
//   - collection_events: one point per create, update, delete or replace,
//     tagged with resource and action
//   - property_stats: a snapshot of the property aggregates after each
//     property mutation
//
// InfluxDB is optional; Connect returns ErrDisabled when it is turned off
// in config.yaml and callers carry on without it.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteCollectionEvent("property", "created", 3)
//
// Writes are non-blocking and batched per batch_size and flush_interval.
// Asynchronous write errors are delivered to the SetOnError callback.
package influxdb
