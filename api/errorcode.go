package api

import (
	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/external/inference"
	"github.com/ai4health/triage-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "permission denied",
		1005: "too many requests",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this phone number has been registered",
		1101: "patient not found",
		1102: "consent is required",
		1103: "invalid credentials",
		1104: "account is not verified",

		1200: store.ErrDispatchNotFound.Error(),
		1201: dispatch.ErrInvalidPriority.Error(),
		1203: dispatch.ErrNoDoctorAvailable.Error(),
		1204: dispatch.ErrNoAmbulanceAvailable.Error(),

		1300: "either text or audio is required",
		1301: inference.ErrUnknownDatasetType.Error(),
		1302: "inference service unavailable",

		1400: "unknown location",

		1500: "video service unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorPermissionDenied           = errorJSON(1004)
	errorTooManyRequests            = errorJSON(1005)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorPhoneTaken         = errorJSON(1100)
	errorPatientNotFound    = errorJSON(1101)
	errorConsentRequired    = errorJSON(1102)
	errorInvalidCredentials = errorJSON(1103)
	errorAccountNotVerified = errorJSON(1104)

	errorDispatchNotFound     = errorJSON(1200)
	errorInvalidPriority      = errorJSON(1201)
	errorNoDoctorAvailable    = errorJSON(1203)
	errorNoAmbulanceAvailable = errorJSON(1204)

	errorMissingSymptomInput  = errorJSON(1300)
	errorUnknownDatasetType   = errorJSON(1301)
	errorInferenceUnavailable = errorJSON(1302)

	errorUnknownLocation = errorJSON(1400)

	errorVideoUnavailable = errorJSON(1500)
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
