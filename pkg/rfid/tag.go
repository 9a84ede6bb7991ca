// Package rfid simulates an RFID reader for demo deployments. A generator
// periodically picks a tag from a fixed catalogue and records it as the latest
// reading; HTTP handlers serve whatever reading is newest.
package rfid

import "time"

// Tag is one reading as served on /rfid-scan.
type Tag struct {
	Type      string    `json:"type"`
	Frequency string    `json:"frequency"`
	UID       string    `json:"uid"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// CatalogEntry is the static part of a mock tag.
type CatalogEntry struct {
	Type      string
	Frequency string
	UID       string
}

// DefaultCatalog lists the tags the simulator cycles through.
var DefaultCatalog = []CatalogEntry{
	{Type: "LF", Frequency: "125 kHz", UID: "04A2243B"},
	{Type: "LF", Frequency: "134.2 kHz", UID: "0E5C11F2"},
	{Type: "HF", Frequency: "13.56 MHz", UID: "E004015085D3A1C2"},
	{Type: "HF", Frequency: "13.56 MHz", UID: "04D45A6A2B5E80"},
	{Type: "NFC", Frequency: "13.56 MHz", UID: "04C9B2E2A65C81"},
	{Type: "UHF", Frequency: "865-868 MHz", UID: "E2801160600002084C3A1F91"},
	{Type: "UHF", Frequency: "902-928 MHz", UID: "E28068940000501E2A4B7C33"},
}
