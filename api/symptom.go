package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai4health/triage-api/score"
	"github.com/ai4health/triage-api/utils"
)

// getSymptoms returns the recognized symptoms with their tier and points.
// Names follow the `lang` query and fall back to english.
func (s *Server) getSymptoms(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")

	c.JSON(http.StatusOK, gin.H{
		"symptoms":      utils.LocalizedCatalog(lang),
		"comorbidities": score.HighRiskConditions(),
	})
}
