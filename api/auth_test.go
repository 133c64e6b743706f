package api

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardhq/patrol-api/mocks"
	"github.com/guardhq/patrol-api/schema"
	"github.com/guardhq/patrol-api/store"
)

func authRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth", s.requestJWT)
	return router
}

func TestRequestJWT(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	digest, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	p := mocks.NewMockPatrolCore(ctl)
	s := Server{
		store:         p,
		jwtPrivateKey: key,
	}

	p.EXPECT().GetGuardByUsername("jdoe").Return(&schema.Guard{
		ID:             5,
		Username:       "jdoe",
		PasswordDigest: string(digest),
		ZoneID:         5,
	}, nil).Times(1)

	req := httptest.NewRequest("POST", "/auth", strings.NewReader(`{"username":"jdoe","password":"hunter2"}`))
	w := httptest.NewRecorder()
	authRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")

	tokenString, ok := jResp["jwt_token"].(string)
	assert.True(t, ok)

	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "5", claims.Subject)
	assert.Equal(t, "patrol-api", claims.Issuer)
}

func TestRequestJWTWrongPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	digest, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	p := mocks.NewMockPatrolCore(ctl)
	s := Server{store: p}

	p.EXPECT().GetGuardByUsername("jdoe").Return(&schema.Guard{
		ID:             5,
		Username:       "jdoe",
		PasswordDigest: string(digest),
	}, nil).Times(1)

	req := httptest.NewRequest("POST", "/auth", strings.NewReader(`{"username":"jdoe","password":"wrong"}`))
	w := httptest.NewRecorder()
	authRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1000), jResp.Code)
}

func TestRequestJWTUnknownGuard(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPatrolCore(ctl)
	s := Server{store: p}

	p.EXPECT().GetGuardByUsername("ghost").Return(nil, store.ErrGuardNotFound).Times(1)

	req := httptest.NewRequest("POST", "/auth", strings.NewReader(`{"username":"ghost","password":"x"}`))
	w := httptest.NewRecorder()
	authRouter(&s).ServeHTTP(w, req)

	// not found is reported as bad credentials so the endpoint can not be
	// used to enumerate usernames
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
}

func TestApikeyAuthentication(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("sekret"))
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"result": "OK"})
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Api-Token", "sekret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Api-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
