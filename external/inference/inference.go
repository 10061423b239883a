package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ai4health/triage-api/consts"
	"github.com/ai4health/triage-api/schema"
)

const (
	logPrefix = "inference"

	predictPath    = "/symptoms/predict"
	visionPath     = "/vision/predict"
	transcribePath = "/audio/transcribe"
	translatePath  = "/text/translate"

	topDiseases = 5
)

var (
	ErrEmptyEndpoint      = fmt.Errorf("empty inference endpoint")
	ErrResponseStatus     = fmt.Errorf("response status not ok")
	ErrUnknownDatasetType = fmt.Errorf("unknown dataset type")
)

// Client - interface to the machine learning collaborators
type Client interface {
	PredictDiseases(ctx context.Context, text string) ([]schema.DiseasePrediction, error)
	PredictImage(ctx context.Context, image io.Reader, filename, datasetType string) (*schema.VisionResult, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
	Translate(ctx context.Context, text string) (string, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

type predictRequest struct {
	Text string `json:"text"`
	TopK int    `json:"top_k"`
}

type predictResponse struct {
	Predictions []schema.DiseasePrediction `json:"predictions"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
}

// New - new inference client. The endpoint is the base url of the model server.
func New(endpoint string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
	}
}

func (c *client) PredictDiseases(ctx context.Context, text string) ([]schema.DiseasePrediction, error) {
	var resp predictResponse
	if err := c.postJSON(ctx, predictPath, predictRequest{Text: text, TopK: topDiseases}, &resp); err != nil {
		return nil, err
	}

	if len(resp.Predictions) > topDiseases {
		resp.Predictions = resp.Predictions[:topDiseases]
	}
	return resp.Predictions, nil
}

func (c *client) PredictImage(ctx context.Context, image io.Reader, filename, datasetType string) (*schema.VisionResult, error) {
	if !consts.ValidDatasetType(datasetType) {
		return nil, ErrUnknownDatasetType
	}

	var result schema.VisionResult
	if err := c.postFile(ctx, visionPath, image, filename, map[string]string{"dataset_type": datasetType}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	var resp transcribeResponse
	if err := c.postFile(ctx, transcribePath, audio, filename, nil, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Translate detects the language of the text and translates it into english
func (c *client) Translate(ctx context.Context, text string) (string, error) {
	var resp translateResponse
	if err := c.postJSON(ctx, translatePath, translateRequest{Text: text, Target: "en"}, &resp); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"language": resp.SourceLanguage,
	}).Debug("text translated")

	return resp.TranslatedText, nil
}

func (c *client) postJSON(ctx context.Context, path string, body, result interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, path, "application/json", bytes.NewReader(b), result)
}

func (c *client) postFile(ctx context.Context, path string, file io.Reader, filename string, fields map[string]string, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, path, w.FormDataContentType(), &buf, result)
}

func (c *client) do(ctx context.Context, path, contentType string, body io.Reader, result interface{}) error {
	if c.endpoint == "" {
		return ErrEmptyEndpoint
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint+path, body)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   path,
			"error":  err,
		}).Error("inference request")
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   path,
			"status": resp.StatusCode,
			"body":   string(d),
		}).Error("inference response")
		return fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	return json.Unmarshal(d, result)
}
