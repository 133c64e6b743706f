package api

import "github.com/guardhq/patrol-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid credentials",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrGuardNotFound.Error(),

		1300: store.ErrCheckpointNotFound.Error(),
		1301: "Checkpoint not in your zone",
		1302: store.ErrCheckpointExists.Error(),

		1310: store.ErrScanNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorGuardNotFound = errorJSON(1100)

	errorCheckpointNotFound     = errorJSON(1300)
	errorCheckpointZoneMismatch = errorJSON(1301)
	errorCheckpointExists       = errorJSON(1302)

	errorScanNotFound = errorJSON(1310)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
