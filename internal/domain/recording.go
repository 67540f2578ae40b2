package domain

// CurrentSchemaVersion is the recording layout written by this version
const CurrentSchemaVersion = 2

// Line tags used in recording files
const (
	LineTypeEvent    = "event"
	LineTypeMetadata = "metadata"
)

// RecordingHeader describes a recording and is stored as its first line
type RecordingHeader struct {
	CreatedAt     string `json:"created_at"`
	Model         string `json:"model"`
	SchemaVersion int    `json:"schema_version"`
	Task          string `json:"task"`
	ToolVersion   string `json:"tool_version"`
	Type          string `json:"type"`
}

// RecordedEvent is one observed record with its offset from the header
type RecordedEvent struct {
	Event    Record `json:"event"`
	OffsetMS int64  `json:"offset_ms"`
	Type     string `json:"type"`
}

// RecordingInfo summarizes a recording found in the recordings directory
type RecordingInfo struct {
	Header RecordingHeader
	Name   string
	Path   string
	Size   int64
}
