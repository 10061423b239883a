package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ai4health/triage-api/background"
	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/external/inference"
	"github.com/ai4health/triage-api/external/videoroom"
	"github.com/ai4health/triage-api/geo"
	"github.com/ai4health/triage-api/logmodule"
	"github.com/ai4health/triage-api/metrics"
	"github.com/ai4health/triage-api/store"
	"github.com/ai4health/triage-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.TriageCore
	mongoStore store.MongoStore

	// JWT signing secret
	jwtSecret []byte

	// External services
	inference        inference.Client
	locationResolver geo.LocationResolver
	escalation       utils.EscalationTrigger
	videoRooms       videoroom.Client

	// audit trail through the background queue
	auditor background.Auditor

	dispatcher *dispatch.Dispatcher
	limiter    *clientRateLimiter
}

// NewServer new instance of server
func NewServer(
	triageStore store.TriageCore,
	mongoStore store.MongoStore,
	jwtSecret []byte,
	inferenceClient inference.Client,
	locationResolver geo.LocationResolver,
	escalation utils.EscalationTrigger,
	videoRooms videoroom.Client,
	auditor background.Auditor) *Server {
	return &Server{
		store:            triageStore,
		mongoStore:       mongoStore,
		jwtSecret:        jwtSecret,
		inference:        inferenceClient,
		locationResolver: locationResolver,
		escalation:       escalation,
		videoRooms:       videoRooms,
		auditor:          auditor,
		dispatcher: dispatch.New(triageStore,
			dispatch.WithSpeed(viper.GetFloat64("dispatch.ambulance_speed_kmh"))),
		limiter: newClientRateLimiter(
			rate.Limit(viper.GetFloat64("server.ratelimit.rps")),
			viper.GetInt("server.ratelimit.burst")),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(metrics.GinMiddleware())

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.Use(s.rateLimitMiddleware())
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/patient/register", s.patientRegister)
		authRoute.POST("/patient/login", s.patientLogin)
		authRoute.POST("/doctor/login", s.doctorLogin)
		authRoute.POST("/worker/login", s.medicLogin)
	}

	apiRoute.GET("/symptoms", s.getSymptoms)
	apiRoute.POST("/diagnose", s.diagnose)
	apiRoute.POST("/process_symptoms", s.processSymptoms)

	careRoute := apiRoute.Group("/care")
	{
		careRoute.GET("/recommendations", s.careRecommendations)
	}

	apiRoute.POST("/dispatch/emergency", s.emergencyDispatch)
	apiRoute.POST("/dispatches/:dispatchID/arrived", s.authMiddleware(roleMedic), s.ambulanceArrived)

	teleconsultRoute := apiRoute.Group("/teleconsult")
	teleconsultRoute.Use(s.authMiddleware(rolePatient, roleDoctor))
	{
		teleconsultRoute.POST("/video_call", s.videoCall)
	}

	historyRoute := apiRoute.Group("/history")
	historyRoute.Use(s.authMiddleware(rolePatient))
	{
		historyRoute.POST("", s.addMedicalRecord)
		historyRoute.GET("", s.getMedicalHistory)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "AI4Health Triage 1.0",
			"languages":      []string{"en", "hi", "ta"},
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
