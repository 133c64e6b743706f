package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/guardhq/patrol-api/store"
	"github.com/guardhq/patrol-api/tagging"
)

const logPrefix = "tagging-worker"

const maxTaggingAttempts = 3

// taggingBackoff holds the delay before attempt 2 and attempt 3.
var taggingBackoff = []time.Duration{60 * time.Second, 120 * time.Second}

// TagCheckpointScan is the queued tagging task. It loads the scan with its
// checkpoint, site and client, builds the tag payload, persists it and
// broadcasts the result to the control room. Persisting and publishing sit
// inside the same retry boundary: a crash between the two replays the whole
// unit, which can duplicate a tag row but never drops the notification.
//
// A scan that no longer exists is a terminal no-op, not a failure.
func (m *TaggingManager) TagCheckpointScan(scanID, attempt int64) error {
	// the attempt counter arrives untrusted from the broker; anything below
	// the first attempt would index the backoff table out of range
	if attempt < 1 {
		attempt = 1
	}

	scan, err := m.store.GetScanWithContext(scanID)
	if err == store.ErrScanNotFound {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"scan_id": scanID,
		}).Warn("scan disappeared before tagging")
		return nil
	}
	if err != nil {
		return m.retryTagging(scanID, attempt, err)
	}

	payload := tagging.BuildPayload(scan)

	tag, err := m.store.CreateScanTag(scanID, payload)
	if err != nil {
		return m.retryTagging(scanID, attempt, err)
	}

	if err := m.publisher.PublishScanTag(context.Background(), tag); err != nil {
		return m.retryTagging(scanID, attempt, err)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"scan_id": scanID,
		"tag_id":  tag.ID,
	}).Info("scan tagged")

	return nil
}

// retryTagging schedules the next attempt with the configured backoff. After
// the final attempt the task is abandoned; the scan then permanently lacks a
// tag unless reprocessed through the retag endpoint.
func (m *TaggingManager) retryTagging(scanID, attempt int64, cause error) error {
	entry := log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"scan_id": scanID,
		"attempt": attempt,
		"error":   cause,
	})

	if attempt >= maxTaggingAttempts {
		entry.Error("tagging attempts exhausted, scan left untagged")
		return cause
	}

	eta := time.Now().UTC().Add(taggingBackoff[attempt-1])
	if _, err := m.sender.SendTask(newTaggingSignature(scanID, attempt+1, &eta)); err != nil {
		entry.WithField("enqueue_error", err).Error("schedule tagging retry")
		return err
	}

	entry.Warn("tagging failed, retry scheduled")
	return nil
}
