package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/guardhq/patrol-api/consts"
	"github.com/guardhq/patrol-api/schema"
	"github.com/guardhq/patrol-api/store"
)

// registerCheckpoint creates a QR-coded checkpoint for a site and mirrors
// its coordinates into the geo index. Internal only.
func (s *Server) registerCheckpoint(c *gin.Context) {
	var params struct {
		Code            string  `json:"code" binding:"required"`
		SiteID          uint    `json:"site_id" binding:"required"`
		Latitude        float64 `json:"latitude" binding:"required"`
		Longitude       float64 `json:"longitude" binding:"required"`
		ToleranceRadius float64 `json:"tolerance_radius"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	location := schema.Location{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	}

	// the address is informational; registration proceeds without it
	address, err := s.geoClient.ReverseGeocode(location)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "api",
			"code":   params.Code,
			"error":  err,
		}).Warn("reverse geocode checkpoint")
	}

	checkpoint, err := s.store.CreateCheckpoint(
		params.Code, params.SiteID,
		params.Latitude, params.Longitude,
		params.ToleranceRadius, address)
	if err == store.ErrCheckpointExists {
		abortWithEncoding(c, http.StatusConflict, errorCheckpointExists)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.UpsertCheckpointLocation(checkpoint.Code, checkpoint.SiteID, location); err != nil {
		log.WithFields(log.Fields{
			"prefix": "api",
			"code":   checkpoint.Code,
			"error":  err,
		}).Error("mirror checkpoint into geo index")
	}

	c.JSON(http.StatusOK, checkpoint)
}

// nearbyCheckpoints lists codes of checkpoints close to the caller, closest
// first, so the mobile client can hint which QR code to look for.
func (s *Server) nearbyCheckpoints(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	distance := consts.NEARBY_DISTANCE_RANGE
	if raw := c.Query("distance"); raw != "" {
		distance, err = strconv.Atoi(raw)
		if err != nil || distance <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	codes, err := s.mongoStore.NearestCheckpoints(distance, schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkpoints": codes})
}
