package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"motionview/internal/model"
	"motionview/internal/query"
	"motionview/pkg/log"
)

const apiPath = "/api"

type Kind string

const (
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
	KindDecode    Kind = "decode"
	KindBackend   Kind = "backend"
)

// Error is a failed search. Message holds the backend's own error text
// when the backend sent one.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("search: backend returned %d: %s", e.Status, e.Message)
	case KindBackend:
		return fmt.Sprintf("search: backend error: %s", e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("search: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("search: %s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

type Result struct {
	Events    []model.Event
	TimeStart string
	TimeEnd   string
	Tags      []model.Tag
}

func (r *Result) Empty() bool {
	return len(r.Events) == 0
}

type Client struct {
	HTTP   *resty.Client
	logger *logrus.Entry
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	r := resty.New()
	r.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	r.SetHeader("Accept", "application/json")
	r.SetTimeout(timeout)

	return &Client{
		HTTP:   r,
		logger: log.ComponentLogger("search"),
	}
}

// Search issues GET /api with the encoded spec. An empty Events slice is
// a successful result.
func (c *Client) Search(ctx context.Context, spec query.Spec) (*Result, error) {
	logger := log.GetLogger(ctx).WithField("component", "search")
	logger.Infof("querying api with: %s", spec.String())

	req := c.HTTP.R().SetContext(ctx)
	if rid := ctx.Value(log.CtxRequestId); rid != nil {
		req.SetHeader(log.HttpXRequestId, fmt.Sprint(rid))
	}
	for k, vs := range spec.Values() {
		for _, v := range vs {
			req.QueryParam.Add(k, v)
		}
	}

	resp, err := req.Get(apiPath)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}

	if resp.IsError() {
		return nil, &Error{Kind: KindStatus, Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	}

	var body model.SearchResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode(), Err: err}
	}
	if body.Error != "" && !body.Success {
		return nil, &Error{Kind: KindBackend, Status: resp.StatusCode(), Message: body.Error}
	}
	if body.Data == nil {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode(), Message: "response has no data field"}
	}

	logger.Debugf("received %d events", len(*body.Data))

	return &Result{
		Events:    *body.Data,
		TimeStart: body.TimeStart,
		TimeEnd:   body.TimeEnd,
		Tags:      body.Tags,
	}, nil
}

// errorMessage prefers a JSON {"error": "..."} payload, then the text of an
// HTML error page, then the raw body.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if looksLikeHTML(body) {
		if msg := htmlMessage(body); msg != "" {
			return msg
		}
	}
	return collapse(string(body))
}
