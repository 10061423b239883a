package api

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ai4health/triage-api/consts"
	"github.com/ai4health/triage-api/metrics"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
	"github.com/ai4health/triage-api/utils"
)

const defaultDatasetType = "skin"

type diagnoseParams struct {
	Text          string             `json:"text"`
	Symptoms      []string           `json:"symptoms"`
	DatasetType   string             `json:"dataset_type"`
	Vitals        *schema.VitalSigns `json:"vitals"`
	Age           *int               `json:"age"`
	Comorbidities []string           `json:"comorbidities"`

	audio *multipart.FileHeader
	image *multipart.FileHeader
}

// bindDiagnoseParams reads either a json body or a multipart form
func bindDiagnoseParams(c *gin.Context) (*diagnoseParams, error) {
	var params diagnoseParams

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		if err := c.ShouldBindJSON(&params); err != nil {
			return nil, err
		}
		return &params, nil
	}

	params.Text = c.PostForm("text")
	params.DatasetType = c.PostForm("dataset_type")
	params.Symptoms = formList(c, "symptoms")
	params.Comorbidities = formList(c, "comorbidities")

	if v := c.PostForm("vitals"); v != "" {
		var vitals schema.VitalSigns
		if err := json.Unmarshal([]byte(v), &vitals); err != nil {
			return nil, fmt.Errorf("invalid vitals: %w", err)
		}
		params.Vitals = &vitals
	}

	if a := c.PostForm("age"); a != "" {
		age, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid age: %w", err)
		}
		params.Age = &age
	}

	if f, err := c.FormFile("audio"); err == nil {
		params.audio = f
	}
	if f, err := c.FormFile("image"); err == nil {
		params.image = f
	}

	return &params, nil
}

// formList accepts both repeated fields and comma separated values
func formList(c *gin.Context, key string) []string {
	list := []string{}
	for _, v := range c.PostFormArray(key) {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}

// needsTranslation reports whether a text contains letters out of the
// ascii range
func needsTranslation(text string) bool {
	for _, r := range text {
		if r > unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// englishText normalizes a free text and translates it to english when it
// is written in another script. A failed translation keeps the original text.
func (s *Server) englishText(ctx context.Context, text string) string {
	if needsTranslation(text) {
		translated, err := s.inference.Translate(ctx, text)
		if err != nil {
			log.WithError(err).Warn("translation failed, use the original text")
		} else {
			text = translated
		}
	}
	return utils.NormalizeText(text)
}

func (s *Server) transcribe(ctx context.Context, f *multipart.FileHeader) (string, error) {
	file, err := f.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return s.inference.Transcribe(ctx, file, f.Filename)
}

// diagnose runs the symptom classifier and the optional image classifier,
// then scores the report
func (s *Server) diagnose(c *gin.Context) {
	logger := log.WithField("api", "diagnose")
	ctx := c.Request.Context()

	params, err := bindDiagnoseParams(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	datasetType := params.DatasetType
	if datasetType == "" {
		datasetType = defaultDatasetType
	}
	if params.image != nil && !consts.ValidDatasetType(datasetType) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownDatasetType)
		return
	}

	text := params.Text
	if params.audio != nil {
		text, err = s.transcribe(ctx, params.audio)
		if err != nil {
			abortWithEncoding(c, http.StatusBadGateway, errorInferenceUnavailable, err)
			return
		}
	}

	normalized := s.englishText(ctx, text)

	predictions := []schema.DiseasePrediction{}
	if normalized != "" {
		predictions, err = s.inference.PredictDiseases(ctx, normalized)
		if err != nil {
			abortWithEncoding(c, http.StatusBadGateway, errorInferenceUnavailable, err)
			return
		}
		if predictions == nil {
			predictions = []schema.DiseasePrediction{}
		}
	}

	symptoms := make([]string, 0, len(predictions)+len(params.Symptoms)+1)
	for _, p := range predictions {
		symptoms = append(symptoms, strings.ToLower(p.Disease))
	}
	symptoms = append(symptoms, params.Symptoms...)

	var vision *schema.VisionResult
	if params.image != nil {
		file, err := params.image.Open()
		if shouldInterupt(err, c) {
			return
		}
		vision, err = s.inference.PredictImage(ctx, file, params.image.Filename, datasetType)
		file.Close()
		if err != nil {
			abortWithEncoding(c, http.StatusBadGateway, errorInferenceUnavailable, err)
			return
		}
		symptoms = append(symptoms, fmt.Sprintf("%s_finding_%d", datasetType, vision.PredClass))
	}

	comorbidities := params.Comorbidities
	if comorbidities == nil {
		comorbidities = []string{}
	}

	report := schema.SymptomReport{
		Symptoms:      symptoms,
		Vitals:        params.Vitals,
		Age:           params.Age,
		Comorbidities: comorbidities,
	}
	severity := score.Severity(report)
	metrics.RecordSeverity(severity)

	triage := schema.TriageReport{
		ID:              uuid.New().String(),
		NormalizedInput: normalized,
		Predictions:     predictions,
		VisionResult:    vision,
		Report:          report,
		Severity:        severity,
		Emergency:       severity.Level == schema.SeveritySevere,
		Timestamp:       time.Now().Unix(),
	}

	if err := s.mongoStore.SaveTriageReport(triage); shouldInterupt(err, c) {
		return
	}

	logger.WithFields(logrus.Fields{
		"report_id": triage.ID,
		"score":     severity.Score,
		"level":     severity.Level,
	}).Info("report scored")
	s.auditor.Audit("anonymous", "diagnose", string(severity.Level))

	c.JSON(http.StatusOK, gin.H{
		"report_id":        triage.ID,
		"normalized_input": normalized,
		"top_5_diseases":   predictions,
		"vision_result":    vision,
		"severity_score":   severity.Score,
		"severity_level":   severity.Level,
		"emergency":        triage.Emergency,
	})
}
