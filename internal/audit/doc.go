// Package audit records and queries the trail of changes made through
// the Estate Core API.
//
// Entries are written to the audit_logs table by a Recorder that drains
// a buffered channel in the background, so request handlers never wait
// on SQLite. The Repository reads them back for GET /audit.
package audit
