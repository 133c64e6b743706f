package tagging

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/guardhq/patrol-api/consts"
	"github.com/guardhq/patrol-api/geo"
	"github.com/guardhq/patrol-api/schema"
)

const logPrefix = "tagging"

// BuildPayload assembles the flat tag record for a scan. It only reads
// fields and relations already loaded on the scan; it never queries or
// re-checks authorization. A failed geohash computation is logged and leaves
// the field null rather than aborting the tag.
func BuildPayload(scan *schema.CheckpointScan) schema.TagPayload {
	payload := schema.TagPayload{
		"scan_id":           scan.ID,
		"supervisor_id":     scan.GuardID,
		"checkpoint_id":     scan.CheckpointID,
		"site_id":           nil,
		"site_name":         nil,
		"client_name":       nil,
		"zone_id":           nil,
		"scanned_at":        scannedAt(scan),
		"latitude":          scan.Latitude,
		"longitude":         scan.Longitude,
		"location_verified": scan.LocationVerified,
		"location_quality":  locationQuality(scan),
		"geohash":           nil,
	}

	if cp := scan.Checkpoint; cp != nil && cp.Site != nil {
		payload["site_id"] = cp.Site.ID
		payload["site_name"] = cp.Site.Name
		payload["zone_id"] = cp.Site.ZoneID
		if cp.Site.Client != nil {
			payload["client_name"] = cp.Site.Client.Name
		}
	}

	hash, err := geo.Encode(scan.Latitude, scan.Longitude, consts.GEOHASH_PRECISION)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"scan_id": scan.ID,
			"error":   err,
		}).Error("compute scan geohash")
	} else if hash != "" {
		payload["geohash"] = hash
	}

	return payload
}

func scannedAt(scan *schema.CheckpointScan) string {
	ts := scan.ScannedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return ts.UTC().Format(time.RFC3339)
}

// locationQuality classifies a scan: "high" when the geofence verified it,
// "medium" when coordinates were reported but did not verify, "low" when the
// device had no GPS fix.
func locationQuality(scan *schema.CheckpointScan) string {
	switch {
	case scan.LocationVerified:
		return schema.LocationQualityHigh
	case scan.Latitude != nil && scan.Longitude != nil:
		return schema.LocationQualityMedium
	default:
		return schema.LocationQualityLow
	}
}
