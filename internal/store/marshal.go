package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/filebus/internal/event"
)

// isoTimestamp is the layout of the human-readable timestamp field.
// Second resolution; the filename carries the microsecond instant.
const isoTimestamp = "2006-01-02T15:04:05Z"

// encodeEvent renders the on-disk event file. Field order is fixed
// (source, type, priority, timestamp, dedup-key, payload) so the files
// diff cleanly and the format stays stable across versions; a generic
// YAML encoder would not guarantee that, which is why encoding is manual
// while parsing goes through yaml.v3.
func encodeEvent(source, eventType string, p event.Priority, ts time.Time, payload string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "source: %s\n", source)
	fmt.Fprintf(&buf, "type: %s\n", eventType)
	fmt.Fprintf(&buf, "priority: %s\n", p)
	fmt.Fprintf(&buf, "timestamp: %s\n", ts.UTC().Format(isoTimestamp))
	fmt.Fprintf(&buf, "dedup-key: %s:%s\n", source, eventType)

	if payload != "" {
		buf.WriteString("payload: |\n")
		for _, line := range strings.Split(strings.TrimSuffix(payload, "\n"), "\n") {
			buf.WriteString("  ")
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// eventDoc is the parse target for event file content. Unknown keys are
// ignored; absent keys leave zero values.
type eventDoc struct {
	Source   string `yaml:"source"`
	Type     string `yaml:"type"`
	Priority string `yaml:"priority"`
	DedupKey string `yaml:"dedup-key"`
	Payload  string `yaml:"payload"`
}

// parseEventContent extracts the authoritative fields from event file
// content. A file that is not valid YAML is an error and the scan skips
// it; a file that parses but lacks a priority falls back to normal, the
// same tolerance the queue has always had for hand-written events.
func parseEventContent(data []byte) (eventDoc, event.Priority, error) {
	var doc eventDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return eventDoc{}, 0, fmt.Errorf("parse event content: %w", err)
	}
	p, err := event.ParsePriority(doc.Priority)
	if err != nil {
		p = event.PriorityNormal
	}
	return doc, p, nil
}
