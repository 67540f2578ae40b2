package services

import (
	"fmt"
	"math"

	"github.com/renato0307/trailhook/internal/domain"
)

// migration upgrades a recording by one schema version, in place
type migration struct {
	event  func(line map[string]any) // applied to every recorded event line
	header func(header map[string]any)
}

// migrations[i] upgrades version i to version i+1
var migrations = []migration{
	{
		// v0 named the session and context fields differently
		event: func(line map[string]any) {
			if ev, ok := line["event"].(map[string]any); ok {
				renameKey(ev, "session", "session_id")
				renameKey(ev, "data", "context")
			}
		},
		header: func(header map[string]any) {
			header["version"] = 1
		},
	},
	{
		// v2 spells out units and aligns header names with the file name
		event: func(line map[string]any) {
			renameKey(line, "offset", "offset_ms")
		},
		header: func(header map[string]any) {
			renameKey(header, "model_id", "model")
			renameKey(header, "version", "schema_version")
			header["schema_version"] = 2
		},
	},
}

// schemaVersion reads the version of a raw header. Headers older than
// schema_version used "version", and the first ones carried none at all.
func schemaVersion(header map[string]any) (int, error) {
	raw, ok := header["schema_version"]
	if !ok {
		raw, ok = header["version"]
	}
	if !ok {
		return 0, nil
	}

	number, ok := raw.(float64)
	if !ok || number < 0 || number != math.Trunc(number) {
		return 0, fmt.Errorf("%w: schema version %v", domain.ErrInvalidRecording, raw)
	}
	version := int(number)
	if version > domain.CurrentSchemaVersion {
		return 0, fmt.Errorf("%w: %d (newest supported is %d)",
			domain.ErrUnsupportedSchema, version, domain.CurrentSchemaVersion)
	}
	return version, nil
}

// migrateHeader upgrades a raw header to the current schema
func migrateHeader(header map[string]any) (int, error) {
	from, err := schemaVersion(header)
	if err != nil {
		return 0, err
	}
	for _, step := range migrations[from:domain.CurrentSchemaVersion] {
		step.header(header)
	}
	return from, nil
}

// migrateRecording upgrades a whole recording in place. The first line must be the header.
func migrateRecording(lines []map[string]any) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: empty recording", domain.ErrInvalidRecording)
	}
	if lines[0]["type"] != domain.LineTypeMetadata {
		return 0, fmt.Errorf("%w: first line is not a metadata header", domain.ErrInvalidRecording)
	}

	from, err := schemaVersion(lines[0])
	if err != nil {
		return 0, err
	}
	for _, step := range migrations[from:domain.CurrentSchemaVersion] {
		step.header(lines[0])
		for _, line := range lines[1:] {
			step.event(line)
		}
	}
	return from, nil
}

// renameKey moves a value to a new key unless the new key is already set
func renameKey(m map[string]any, from, to string) {
	value, ok := m[from]
	if !ok {
		return
	}
	if _, exists := m[to]; !exists {
		m[to] = value
	}
	delete(m, from)
}
