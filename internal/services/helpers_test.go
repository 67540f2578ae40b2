package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

// normalizeRecords passes records through JSON so their maps hold the same
// value types as records read back from a file
func normalizeRecords(t *testing.T, records []domain.Record) []domain.Record {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)

	var out []domain.Record
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
