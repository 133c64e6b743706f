package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/guardhq/patrol-api/mocks"
	"github.com/guardhq/patrol-api/schema"
	"github.com/guardhq/patrol-api/store"
)

func TestRegisterCheckpoint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPatrolCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	g := mocks.NewMockGeoInfo(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
		geoClient:  g,
	}

	location := schema.Location{Latitude: 1.0, Longitude: 1.0}

	g.EXPECT().ReverseGeocode(location).Return("1 Harbor Rd", nil).Times(1)
	p.EXPECT().CreateCheckpoint("CP-42", uint(3), 1.0, 1.0, 50.0, "1 Harbor Rd").
		Return(&schema.Checkpoint{ID: 7, Code: "CP-42", SiteID: 3, Latitude: 1.0, Longitude: 1.0, ToleranceRadius: 50, Address: "1 Harbor Rd"}, nil).Times(1)
	m.EXPECT().UpsertCheckpointLocation("CP-42", uint(3), location).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.registerCheckpoint)

	body := `{"code":"CP-42","site_id":3,"latitude":1.0,"longitude":1.0,"tolerance_radius":50}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Checkpoint
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, "CP-42", jResp.Code)
	assert.Equal(t, "1 Harbor Rd", jResp.Address)
}

func TestRegisterCheckpointDuplicateCode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPatrolCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	g := mocks.NewMockGeoInfo(ctl)

	s := Server{
		store:      p,
		mongoStore: m,
		geoClient:  g,
	}

	g.EXPECT().ReverseGeocode(gomock.Any()).Return("", nil).Times(1)
	p.EXPECT().CreateCheckpoint("CP-42", uint(3), 1.0, 1.0, 0.0, "").
		Return(nil, store.ErrCheckpointExists).Times(1)
	m.EXPECT().UpsertCheckpointLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.registerCheckpoint)

	body := `{"code":"CP-42","site_id":3,"latitude":1.0,"longitude":1.0}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1302), jResp.Code)
}

func TestNearbyCheckpoints(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().NearestCheckpoints(500, schema.Location{Latitude: 1.23, Longitude: 4.56}).
		Return([]string{"CP-42", "CP-17"}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.nearbyCheckpoints)

	req := httptest.NewRequest("GET", "/?latitude=1.23&longitude=4.56", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]string
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, []string{"CP-42", "CP-17"}, jResp["checkpoints"])
}

func TestNearbyCheckpointsBadDistance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().NearestCheckpoints(gomock.Any(), gomock.Any()).Times(0)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.nearbyCheckpoints)

	req := httptest.NewRequest("GET", "/?latitude=1.23&longitude=4.56&distance=-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
