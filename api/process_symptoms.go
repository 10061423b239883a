package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai4health/triage-api/metrics"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
	"github.com/ai4health/triage-api/utils"
)

type processSymptomsParams struct {
	SymptomsText string   `json:"symptoms_text" form:"symptoms_text"`
	Address      string   `json:"address" form:"address"`
	Lat          *float64 `json:"-" form:"lat"`
	Lng          *float64 `json:"-" form:"lng"`

	Location *schema.Location `json:"location" form:"-"`
}

// processSymptoms takes a free text or a voice note, scores the symptoms it
// mentions and dispatches care by the resulting priority
func (s *Server) processSymptoms(c *gin.Context) {
	ctx := c.Request.Context()

	var params processSymptomsParams
	if err := c.ShouldBind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	audio, _ := c.FormFile("symptoms_audio")
	if params.SymptomsText == "" && audio == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingSymptomInput)
		return
	}

	rawText := params.SymptomsText
	if audio != nil {
		text, err := s.transcribe(ctx, audio)
		if err != nil {
			abortWithEncoding(c, http.StatusBadGateway, errorInferenceUnavailable, err)
			return
		}
		rawText = text
	}

	normalized := s.englishText(ctx, rawText)
	symptoms := utils.SymptomsFromText(normalized)

	severity := score.Severity(schema.SymptomReport{
		Symptoms:      symptoms,
		Comorbidities: []string{},
	})
	metrics.RecordSeverity(severity)
	priority := score.Priority(severity)

	loc := params.Location
	if loc == nil && params.Lat != nil && params.Lng != nil {
		loc = &schema.Location{Latitude: *params.Lat, Longitude: *params.Lng}
	}
	loc = s.resolveLocation(ctx, loc, params.Address)

	record := s.dispatchCase(c, symptoms, priority, loc)
	if record == nil {
		return
	}

	s.auditor.Audit("system", "process_symptoms", string(severity.Level))

	c.JSON(http.StatusOK, gin.H{
		"raw_text":          rawText,
		"normalized_text":   normalized,
		"symptoms":          symptoms,
		"severity_score":    severity.Score,
		"severity_level":    severity.Level,
		"priority":          priority,
		"dispatch_id":       record.ID,
		"assigned_doctor":   record.Doctor,
		"ambulance_service": record.Ambulance,
	})
}
