package controlroom

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v7"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/guardhq/patrol-api/schema"
)

const logPrefix = "controlroom"

// Publisher - interface to push finished scan tags to the control-room live
// view. Delivery is at-most-once; a publish with no subscriber connected is
// simply lost, this is a dashboard feed and not an audit log.
type Publisher interface {
	PublishScanTag(ctx context.Context, tag *schema.ScanTag) error
}

// ScanTaggedEvent is the wire format of the broadcast message. It carries
// only the published tag fields, not the full storage row.
type ScanTaggedEvent struct {
	ScanTag EventScanTag `json:"scan_tag"`
}

type EventScanTag struct {
	ID               uuid.UUID         `json:"id"`
	Tags             schema.TagPayload `json:"tags"`
	CreatedAt        time.Time         `json:"created_at"`
	CheckpointScanID int64             `json:"checkpoint_scan_id"`
}

func newScanTaggedEvent(tag *schema.ScanTag) ScanTaggedEvent {
	return ScanTaggedEvent{
		ScanTag: EventScanTag{
			ID:               tag.ID,
			Tags:             tag.Tags,
			CreatedAt:        tag.CreatedAt,
			CheckpointScanID: tag.CheckpointScanID,
		},
	}
}

type redisPublisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher - a Publisher backed by a redis channel
func NewPublisher(client *redis.Client, channel string) Publisher {
	return &redisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *redisPublisher) PublishScanTag(ctx context.Context, tag *schema.ScanTag) error {
	message, err := json.Marshal(newScanTaggedEvent(tag))
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":             logPrefix,
		"checkpoint_scan_id": tag.CheckpointScanID,
	}).Debug("publish scan tagged event")

	return p.client.WithContext(ctx).Publish(p.channel, message).Err()
}
