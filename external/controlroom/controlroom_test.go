package controlroom

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/guardhq/patrol-api/schema"
)

func TestScanTaggedEventWireFormat(t *testing.T) {
	tag := &schema.ScanTag{
		ID:               uuid.New(),
		CheckpointScanID: 42,
		Tags:             schema.TagPayload{"location_quality": "high"},
		CreatedAt:        time.Date(2020, 4, 20, 10, 30, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2020, 4, 20, 10, 31, 0, 0, time.UTC),
	}

	message, err := json.Marshal(newScanTaggedEvent(tag))
	assert.NoError(t, err)

	var decoded map[string]map[string]interface{}
	assert.NoError(t, json.Unmarshal(message, &decoded))

	event := decoded["scan_tag"]
	assert.Equal(t, tag.ID.String(), event["id"])
	assert.Equal(t, float64(42), event["checkpoint_scan_id"])
	assert.Equal(t, map[string]interface{}{"location_quality": "high"}, event["tags"])
	assert.Contains(t, event, "created_at")

	// the storage row's bookkeeping fields stay off the wire
	assert.NotContains(t, event, "updated_at")
	assert.Len(t, event, 4)
}
