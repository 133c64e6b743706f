package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/guardhq/patrol-api/consts"
	"github.com/guardhq/patrol-api/geo"
	"github.com/guardhq/patrol-api/store"
)

// scanCheckpoint is the scan ingestion API. It resolves the scanned QR code,
// enforces zone scoping, verifies the observed coordinates against the
// checkpoint geofence and persists the scan, then hands the scan id to the
// tagging queue. The response never waits for tagging.
func (s *Server) scanCheckpoint(c *gin.Context) {
	guard := currentGuard(c)

	var params struct {
		Code       string   `json:"code" binding:"required"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
		Notes      string   `json:"notes" binding:"max=500"`
		DeviceInfo string   `json:"device_info" binding:"max=255"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	checkpoint, err := s.store.GetCheckpointByCode(params.Code)
	if err == store.ErrCheckpointNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorCheckpointNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	// a guard may only scan checkpoints inside their assigned zone
	if checkpoint.Site == nil || checkpoint.Site.ZoneID != guard.ZoneID {
		abortWithEncoding(c, http.StatusForbidden, errorCheckpointZoneMismatch)
		return
	}

	tolerance := checkpoint.EffectiveTolerance()
	if tolerance == 0 {
		tolerance = consts.DEFAULT_TOLERANCE_METERS
	}

	locationVerified := geo.VerifyLocation(
		checkpoint.Latitude, checkpoint.Longitude,
		params.Latitude, params.Longitude,
		tolerance)

	scan, err := s.store.CreateScan(
		checkpoint.ID, guard.ID,
		params.Latitude, params.Longitude,
		params.Notes, params.DeviceInfo,
		locationVerified)
	if shouldInterupt(err, c) {
		return
	}

	// The scan is already persisted; a failed enqueue leaves it untagged
	// until the retag endpoint reprocesses it, so the scanning guard still
	// gets a success.
	if err := s.enqueuer.EnqueueScanTagging(scan.ID); err != nil {
		log.WithFields(log.Fields{
			"prefix":  "api",
			"scan_id": scan.ID,
			"error":   err,
		}).Error("enqueue scan tagging")
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  "OK",
		"scan_id": scan.ID,
	})
}

// retagScan re-enqueues tagging for a scan whose earlier attempts were
// exhausted. Internal only.
func (s *Server) retagScan(c *gin.Context) {
	var params struct {
		ScanID int64 `uri:"scanID" binding:"required"`
	}

	if err := c.ShouldBindUri(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.store.GetScanWithContext(params.ScanID); err == store.ErrScanNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorScanNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := s.enqueuer.EnqueueScanTagging(params.ScanID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
