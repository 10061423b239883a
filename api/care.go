package api

import (
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/utils"
)

type hospitalRecommendation struct {
	schema.Hospital
	DistanceKm float64 `json:"distance_km"`
}

type ambulanceRecommendation struct {
	schema.NGO
	DistanceKm float64 `json:"distance_km"`
}

// ambulances are only suggested for these risk levels
var ambulanceRiskLevels = map[string]bool{
	"high":   true,
	"severe": true,
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// careRecommendations lists nearby hospitals, and ambulance partners for
// high risk cases. The location comes from lat/lng or a geocoded address.
func (s *Server) careRecommendations(c *gin.Context) {
	var params struct {
		RiskLevel string   `form:"risk_level" binding:"required"`
		Specialty string   `form:"specialty"`
		Lat       *float64 `form:"lat"`
		Lng       *float64 `form:"lng"`
		Address   string   `form:"address"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var loc schema.Location
	switch {
	case params.Lat != nil && params.Lng != nil:
		loc = schema.Location{Latitude: *params.Lat, Longitude: *params.Lng}
	case params.Address != "":
		if s.locationResolver == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownLocation)
			return
		}
		l, err := s.locationResolver.Resolve(c.Request.Context(), params.Address)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownLocation, err)
			return
		}
		loc = l
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	hospitals, err := s.store.ListHospitals(params.Specialty)
	if shouldInterupt(err, c) {
		return
	}

	hospitalList := make([]hospitalRecommendation, 0, len(hospitals))
	for _, h := range hospitals {
		hospitalList = append(hospitalList, hospitalRecommendation{
			Hospital:   h,
			DistanceKm: roundKm(utils.Distance(loc, h.Location())),
		})
	}
	sort.SliceStable(hospitalList, func(i, j int) bool {
		return hospitalList[i].DistanceKm < hospitalList[j].DistanceKm
	})

	ambulanceList := make([]ambulanceRecommendation, 0)
	if ambulanceRiskLevels[params.RiskLevel] {
		ngos, err := s.store.ListNGOs()
		if shouldInterupt(err, c) {
			return
		}

		for _, n := range ngos {
			ambulanceList = append(ambulanceList, ambulanceRecommendation{
				NGO:        n,
				DistanceKm: roundKm(utils.Distance(loc, n.Location())),
			})
		}
		sort.SliceStable(ambulanceList, func(i, j int) bool {
			return ambulanceList[i].DistanceKm < ambulanceList[j].DistanceKm
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"location":  loc,
		"hospitals": hospitalList,
		"ambulance": ambulanceList,
	})
}
