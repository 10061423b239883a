package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// roomName returns a short unique room name
func roomName() string {
	return "consult-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// videoCall opens a video room for a doctor and a patient and hands out an
// access token to each of them
func (s *Server) videoCall(c *gin.Context) {
	var params struct {
		DoctorName  string `json:"doctor_name" binding:"required"`
		PatientName string `json:"patient_name" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if s.videoRooms == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorVideoUnavailable)
		return
	}

	action := fmt.Sprintf("video_call_with_%s", params.DoctorName)

	name := roomName()
	room, err := s.videoRooms.CreateRoom(c.Request.Context(), name)
	if err != nil {
		s.auditor.Audit(params.PatientName, action, "FAILED")
		abortWithEncoding(c, http.StatusBadGateway, errorVideoUnavailable, err)
		return
	}
	if room.UniqueName == "" {
		room.UniqueName = name
	}

	doctorToken, err := s.videoRooms.AccessToken(params.DoctorName, room.UniqueName)
	if err != nil {
		s.auditor.Audit(params.PatientName, action, "FAILED")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	patientToken, err := s.videoRooms.AccessToken(params.PatientName, room.UniqueName)
	if err != nil {
		s.auditor.Audit(params.PatientName, action, "FAILED")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	log.WithFields(logrus.Fields{
		"room":      room.UniqueName,
		"room_sid":  room.SID,
		"requester": c.GetString("requester"),
	}).Info("video call created")

	s.auditor.Audit(params.PatientName, action, "SUCCESS")

	c.JSON(http.StatusOK, gin.H{
		"room_name":     room.UniqueName,
		"room_sid":      room.SID,
		"doctor_token":  doctorToken,
		"patient_token": patientToken,
	})
}
