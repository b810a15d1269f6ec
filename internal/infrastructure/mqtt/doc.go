// Package mqtt publishes Estate Core change notifications to an MQTT broker.
//
// MQTT is optional. When enabled, every successful create, update,
// delete or replace is published as an event, and the size of the
// affected collection is kept on a retained state topic:
//
//	estate/events/{resource}/{action}
//	estate/state/{resource}/count
//	estate/system/status
//
// A Last Will and Testament marks the service offline on the status topic
// if it disconnects uncleanly.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := client.Topics().Event("property", "created")
//	err = client.PublishJSON(topic, payload, false)
package mqtt
