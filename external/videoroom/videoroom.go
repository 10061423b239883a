package videoroom

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "videoroom"

	DefaultEndpoint = "https://video.twilio.com"
	DefaultTokenTTL = time.Hour

	roomsPath = "/v1/Rooms"
	roomType  = "group"

	accessTokenContentType = "twilio-fpa;v=1"
)

var (
	ErrMissingCredentials = fmt.Errorf("missing video service credentials")
	ErrResponseStatus     = fmt.Errorf("response status not ok")
)

// Room is a video room both parties of a teleconsultation join
type Room struct {
	SID        string `json:"sid"`
	UniqueName string `json:"unique_name"`
	Status     string `json:"status"`
	Type       string `json:"type"`
}

// Client - interface to the programmable video service
type Client interface {
	CreateRoom(ctx context.Context, name string) (*Room, error)
	AccessToken(identity, room string) (string, error)
}

type Config struct {
	Endpoint     string
	AccountSID   string
	APIKeySID    string
	APIKeySecret string
	TokenTTL     time.Duration
}

type client struct {
	config     Config
	httpClient *http.Client
	now        func() time.Time
}

// New returns a video room client. A room is created through the REST api
// and the access tokens are signed locally with the api key secret.
func New(config Config, httpClient *http.Client) (Client, error) {
	if config.AccountSID == "" || config.APIKeySID == "" || config.APIKeySecret == "" {
		return nil, ErrMissingCredentials
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	config.Endpoint = strings.TrimRight(config.Endpoint, "/")
	if config.TokenTTL <= 0 {
		config.TokenTTL = DefaultTokenTTL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		config:     config,
		httpClient: httpClient,
		now:        time.Now,
	}, nil
}

func (c *client) CreateRoom(ctx context.Context, name string) (*Room, error) {
	form := url.Values{}
	form.Set("UniqueName", name)
	form.Set("Type", roomType)

	req, err := http.NewRequest(http.MethodPost, c.config.Endpoint+roomsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.config.APIKeySID, c.config.APIKeySecret)

	resp, err := c.httpClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"room":   name,
			"error":  err,
		}).Error("create room request")
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"room":   name,
			"status": resp.StatusCode,
			"body":   string(d),
		}).Error("create room response")
		return nil, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	var room Room
	if err := json.Unmarshal(d, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

type videoGrant struct {
	Room string `json:"room,omitempty"`
}

type grants struct {
	Identity string     `json:"identity"`
	Video    videoGrant `json:"video"`
}

type accessTokenClaims struct {
	Grants grants `json:"grants"`
	jwt.StandardClaims
}

// AccessToken issues a token which lets the identity join the room
func (c *client) AccessToken(identity, room string) (string, error) {
	now := c.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Grants: grants{
			Identity: identity,
			Video:    videoGrant{Room: room},
		},
		StandardClaims: jwt.StandardClaims{
			Id:        fmt.Sprintf("%s-%d", c.config.APIKeySID, now.Unix()),
			Issuer:    c.config.APIKeySID,
			Subject:   c.config.AccountSID,
			NotBefore: now.Unix(),
			ExpiresAt: now.Add(c.config.TokenTTL).Unix(),
		},
	})
	token.Header["cty"] = accessTokenContentType

	return token.SignedString([]byte(c.config.APIKeySecret))
}
