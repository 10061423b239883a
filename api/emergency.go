package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/metrics"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
	"github.com/ai4health/triage-api/store"
)

// dispatchCase assigns care for a case, keeps the record and starts the
// escalation of the ambulance when one is on the way. It responds the
// error itself and returns nil in that case.
func (s *Server) dispatchCase(c *gin.Context, symptoms []string, priority int, loc *schema.Location) *schema.DispatchRecord {
	record, err := s.dispatcher.Dispatch(symptoms, priority, loc)
	switch err {
	case nil:
	case dispatch.ErrInvalidPriority:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPriority)
		return nil
	case dispatch.ErrNoDoctorAvailable:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorNoDoctorAvailable)
		return nil
	case dispatch.ErrNoAmbulanceAvailable:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorNoAmbulanceAvailable)
		return nil
	default:
		shouldInterupt(err, c)
		return nil
	}

	if err := s.mongoStore.SaveDispatch(*record); shouldInterupt(err, c) {
		return nil
	}
	metrics.RecordDispatch(record)

	if record.Ambulance.Dispatched() {
		if err := s.escalation.StartEscalation(c.Request.Context(), record.ID, record.Ambulance.ETAMinutes); err != nil {
			log.WithError(err).WithField("dispatch_id", record.ID).Error("fail to start ambulance escalation")
		}
	}

	return record
}

// resolveLocation prefers the given coordinates and geocodes the address
// otherwise. An unresolvable address gives no location.
func (s *Server) resolveLocation(ctx context.Context, loc *schema.Location, address string) *schema.Location {
	if loc != nil {
		return loc
	}
	if address == "" || s.locationResolver == nil {
		return nil
	}

	l, err := s.locationResolver.Resolve(ctx, address)
	if err != nil {
		log.WithError(err).WithField("address", address).Warn("unable to resolve address")
		return nil
	}
	return &l
}

// emergencyDispatch assigns a doctor and, from priority 3, an ambulance
func (s *Server) emergencyDispatch(c *gin.Context) {
	var params struct {
		Symptoms      []string         `json:"symptoms" binding:"required"`
		SeverityLevel int              `json:"severity_level"`
		Location      *schema.Location `json:"location"`
		Address       string           `json:"address"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !score.ValidPriority(params.SeverityLevel) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidPriority)
		return
	}

	loc := s.resolveLocation(c.Request.Context(), params.Location, params.Address)
	record := s.dispatchCase(c, params.Symptoms, params.SeverityLevel, loc)
	if record == nil {
		return
	}

	s.auditor.Audit("system", fmt.Sprintf("emergency_dispatch_doctor_%d", record.Doctor.ID), "SUCCESS")

	c.JSON(http.StatusOK, gin.H{
		"status":            "dispatch_processed",
		"dispatch_id":       record.ID,
		"assigned_doctor":   record.Doctor,
		"ambulance_service": record.Ambulance,
	})
}

// ambulanceArrived is called by the ambulance worker on the scene. It
// closes the dispatch and stops the escalation.
func (s *Server) ambulanceArrived(c *gin.Context) {
	dispatchID := c.Param("dispatchID")
	medic := c.GetString("requester")

	err := s.mongoStore.MarkAmbulanceArrived(dispatchID, time.Now().Unix())
	if err == store.ErrDispatchNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorDispatchNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := s.escalation.SignalArrival(c.Request.Context(), dispatchID); err != nil {
		log.WithError(err).WithField("dispatch_id", dispatchID).Warn("fail to signal ambulance arrival")
	}

	s.auditor.Audit("medic:"+medic, "ambulance_arrived_"+dispatchID, "SUCCESS")

	c.JSON(http.StatusOK, gin.H{
		"status":      "arrived",
		"dispatch_id": dispatchID,
	})
}
