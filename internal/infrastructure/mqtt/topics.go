package mqtt

import "strings"

// DefaultTopicPrefix is used when the configured prefix is empty.
const DefaultTopicPrefix = "estate"

// Topics builds the topic names Estate Core publishes on.
//
//	estate/events/property/created      change events (not retained)
//	estate/state/property/count         collection size (retained)
//	estate/system/status                online/offline (retained, LWT)
type Topics struct {
	Prefix string
}

func (t Topics) prefix() string {
	p := strings.Trim(t.Prefix, "/")
	if p == "" {
		return DefaultTopicPrefix
	}
	return p
}

// Event returns the topic for a change event on a resource.
//
// Example: estate/events/property/created
func (t Topics) Event(resource, action string) string {
	return t.prefix() + "/events/" + resource + "/" + action
}

// AllEvents returns a wildcard matching every change event.
func (t Topics) AllEvents() string {
	return t.prefix() + "/events/#"
}

// CollectionCount returns the retained topic carrying a collection's size.
//
// Example: estate/state/property/count
func (t Topics) CollectionCount(resource string) string {
	return t.prefix() + "/state/" + resource + "/count"
}

// SystemStatus returns the retained service status topic, also used for the LWT.
func (t Topics) SystemStatus() string {
	return t.prefix() + "/system/status"
}
