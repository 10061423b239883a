package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/store"
)

type dispatchResponse struct {
	Status           string                     `json:"status"`
	DispatchID       string                     `json:"dispatch_id"`
	AssignedDoctor   schema.DoctorAssignment    `json:"assigned_doctor"`
	AmbulanceService schema.AmbulanceAssignment `json:"ambulance_service"`

	RawText        string   `json:"raw_text"`
	NormalizedText string   `json:"normalized_text"`
	Symptoms       []string `json:"symptoms"`
	SeverityScore  int      `json:"severity_score"`
	SeverityLevel  string   `json:"severity_level"`
	Priority       int      `json:"priority"`
}

func decodeDispatch(t *testing.T, body []byte) dispatchResponse {
	var resp dispatchResponse
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestEmergencyDispatchWithAmbulance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	var saved schema.DispatchRecord
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).DoAndReturn(func(r schema.DispatchRecord) error {
		saved = r
		return nil
	})
	ts.escalation.EXPECT().StartEscalation(gomock.Any(), gomock.Any(), 12).Return(nil)
	ts.auditor.EXPECT().Audit("system", "emergency_dispatch_doctor_8", "SUCCESS")

	w := ts.serve(jsonRequest("POST", "/api/dispatch/emergency", `{"symptoms":["chest pain"],"severity_level":4}`))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeDispatch(t, w.Body.Bytes())
	assert.Equal(t, "dispatch_processed", resp.Status)
	assert.Equal(t, saved.ID, resp.DispatchID)

	// priority 4 prefers the emergency specialty
	assert.Equal(t, int64(8), resp.AssignedDoctor.ID)
	assert.Equal(t, schema.ConsultEmergency, resp.AssignedDoctor.ConsultType)
	assert.Equal(t, 40, resp.AssignedDoctor.ETAMinutes)
	assert.Equal(t, "10:40:00", resp.AssignedDoctor.ExpectedArrival)

	assert.Equal(t, schema.AmbulanceDispatched, resp.AmbulanceService.Status)
	assert.Equal(t, int64(1), resp.AmbulanceService.NGOID)
	assert.Equal(t, 12, resp.AmbulanceService.ETAMinutes)
	assert.Equal(t, "10:12:00", resp.AmbulanceService.ExpectedArrival)
}

func TestEmergencyDispatchWithoutAmbulance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).Return(nil)
	ts.auditor.EXPECT().Audit("system", "emergency_dispatch_doctor_1", "SUCCESS")

	w := ts.serve(jsonRequest("POST", "/api/dispatch/emergency", `{"symptoms":["cough"],"severity_level":1}`))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeDispatch(t, w.Body.Bytes())
	assert.Equal(t, schema.ConsultTeleconsult, resp.AssignedDoctor.ConsultType)
	assert.Zero(t, resp.AssignedDoctor.ETAMinutes)
	assert.Equal(t, schema.AmbulanceNotNeeded, resp.AmbulanceService.Status)
}

func TestEmergencyDispatchResolvesAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.resolver.EXPECT().
		Resolve(gomock.Any(), "Park Town, Chennai").
		Return(schema.Location{Latitude: 13.0827, Longitude: 80.2707}, nil)
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).DoAndReturn(func(r schema.DispatchRecord) error {
		if assert.NotNil(t, r.Location) {
			assert.Equal(t, 13.0827, r.Location.Latitude)
		}
		return nil
	})
	ts.escalation.EXPECT().StartEscalation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.auditor.EXPECT().Audit("system", gomock.Any(), "SUCCESS")

	w := ts.serve(jsonRequest("POST", "/api/dispatch/emergency",
		`{"symptoms":["fracture"],"severity_level":3,"address":"Park Town, Chennai"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	// nearest partner to Park Town
	resp := decodeDispatch(t, w.Body.Bytes())
	assert.Equal(t, int64(10), resp.AmbulanceService.NGOID)
}

func TestEmergencyDispatchInvalidSeverity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	for _, level := range []string{"0", "6", "-1"} {
		w := ts.serve(jsonRequest("POST", "/api/dispatch/emergency", `{"symptoms":["cough"],"severity_level":`+level+`}`))
		assertErrorCode(t, w, http.StatusBadRequest, 1201)
	}
}

func TestEmergencyDispatchEscalationFailureIsNotFatal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).Return(nil)
	ts.escalation.EXPECT().StartEscalation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cadence unavailable"))
	ts.auditor.EXPECT().Audit(gomock.Any(), gomock.Any(), gomock.Any())

	w := ts.serve(jsonRequest("POST", "/api/dispatch/emergency", `{"symptoms":["unconsciousness"],"severity_level":5}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessSymptomsText(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).Return(nil)
	ts.escalation.EXPECT().StartEscalation(gomock.Any(), gomock.Any(), 12).Return(nil)
	ts.auditor.EXPECT().Audit("system", "process_symptoms", "moderate")

	form := url.Values{"symptoms_text": {"I have Chest pain, and a cough!"}}
	req, _ := http.NewRequest("POST", "/api/process_symptoms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := ts.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeDispatch(t, w.Body.Bytes())
	assert.Equal(t, "I have Chest pain, and a cough!", resp.RawText)
	assert.Equal(t, "i have chest pain and a cough", resp.NormalizedText)
	assert.Equal(t, []string{"chest pain", "cough"}, resp.Symptoms)
	assert.Equal(t, 30, resp.SeverityScore)
	assert.Equal(t, "moderate", resp.SeverityLevel)
	assert.Equal(t, 3, resp.Priority)
	assert.NotEmpty(t, resp.DispatchID)

	assert.Equal(t, "cardiology", resp.AssignedDoctor.Specialty)
	assert.Equal(t, schema.AmbulanceDispatched, resp.AmbulanceService.Status)
}

func TestProcessSymptomsTranslatesText(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.inference.EXPECT().Translate(gomock.Any(), "எனக்கு இருமல்").Return("I have a cough", nil)
	ts.mongo.EXPECT().SaveDispatch(gomock.Any()).Return(nil)
	ts.auditor.EXPECT().Audit("system", "process_symptoms", "mild")

	w := ts.serve(jsonRequest("POST", "/api/process_symptoms", `{"symptoms_text":"எனக்கு இருமல்"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeDispatch(t, w.Body.Bytes())
	assert.Equal(t, "i have a cough", resp.NormalizedText)
	assert.Equal(t, []string{"cough"}, resp.Symptoms)
	assert.Equal(t, 1, resp.Priority)
	assert.Equal(t, schema.ConsultTeleconsult, resp.AssignedDoctor.ConsultType)
	assert.Equal(t, schema.AmbulanceNotNeeded, resp.AmbulanceService.Status)
}

func TestProcessSymptomsRequiresInput(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	w := ts.serve(jsonRequest("POST", "/api/process_symptoms", `{}`))
	assertErrorCode(t, w, http.StatusBadRequest, 1300)
}

func medicRequest(t *testing.T, ts *testServer, target string) *http.Request {
	token, err := ts.issueToken("1", roleMedic)
	assert.NoError(t, err)

	req := jsonRequest("POST", target, "")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAmbulanceArrived(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().MarkAmbulanceArrived("d-1", gomock.Any()).Return(nil)
	ts.escalation.EXPECT().SignalArrival(gomock.Any(), "d-1").Return(nil)
	ts.auditor.EXPECT().Audit("medic:1", "ambulance_arrived_d-1", "SUCCESS")

	w := ts.serve(medicRequest(t, ts, "/api/dispatches/d-1/arrived"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "arrived", decodeBody(t, w)["status"])
}

func TestAmbulanceArrivedUnknownDispatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().MarkAmbulanceArrived("d-2", gomock.Any()).Return(store.ErrDispatchNotFound)

	w := ts.serve(medicRequest(t, ts, "/api/dispatches/d-2/arrived"))
	assertErrorCode(t, w, http.StatusNotFound, 1200)
}

func TestAmbulanceArrivedSignalFailureIsNotFatal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.mongo.EXPECT().MarkAmbulanceArrived("d-3", gomock.Any()).Return(nil)
	ts.escalation.EXPECT().SignalArrival(gomock.Any(), "d-3").Return(errors.New("workflow not found"))
	ts.auditor.EXPECT().Audit("medic:1", "ambulance_arrived_d-3", "SUCCESS")

	w := ts.serve(medicRequest(t, ts, "/api/dispatches/d-3/arrived"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAmbulanceArrivedRequiresMedic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	req, _ := patientRequest(t, ts, "POST", "/api/dispatches/d-1/arrived", "")

	w := ts.serve(req)
	assertErrorCode(t, w, http.StatusForbidden, 1004)
}
