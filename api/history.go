package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ai4health/triage-api/schema"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// addMedicalRecord appends a free-form record to the history of the
// requesting patient
func (s *Server) addMedicalRecord(c *gin.Context) {
	patientID := c.GetString("requester")

	var params struct {
		Data map[string]interface{} `json:"data" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	record := schema.MedicalRecord{
		Timestamp: time.Now().Unix(),
		Data:      params.Data,
	}

	if err := s.mongoStore.AddMedicalRecord(patientID, record); shouldInterupt(err, c) {
		s.auditor.Audit(patientID, "add_medical_record", "FAILED")
		return
	}

	s.auditor.Audit(patientID, "add_medical_record", "SUCCESS")

	c.JSON(http.StatusOK, gin.H{"status": "record added"})
}

// getMedicalHistory returns the records of the requesting patient, newest
// first. `before` is a unix timestamp and defaults to now.
func (s *Server) getMedicalHistory(c *gin.Context) {
	patientID := c.GetString("requester")

	var params struct {
		Before int64 `form:"before"`
		Limit  int64 `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Before <= 0 {
		params.Before = time.Now().Unix() + 1
	}

	switch {
	case params.Limit <= 0:
		params.Limit = defaultHistoryLimit
	case params.Limit > maxHistoryLimit:
		params.Limit = maxHistoryLimit
	}

	records, err := s.mongoStore.GetMedicalRecords(patientID, params.Before, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	s.auditor.Audit(patientID, "get_medical_history", "SUCCESS")

	c.JSON(http.StatusOK, gin.H{"result": records})
}
