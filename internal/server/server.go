package server

import (
	"context"
	goerrors "errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"motionview/internal/config"
	"motionview/internal/metrics"
	"motionview/internal/viewer"
	"motionview/pkg/log"
)

type Server struct {
	conf       *config.Config
	viewer     *viewer.Viewer
	sessions   *Sessions
	metrics    *metrics.Metrics
	page       *template.Template
	httpServer *http.Server
	logger     *logrus.Entry
}

func NewServer(ctx context.Context, conf *config.Config, v *viewer.Viewer, m *metrics.Metrics) (*Server, error) {
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	sessions, err := NewSessions(conf.Viewer.MaxSessions, v.NewSession, m)
	if err != nil {
		return nil, err
	}

	s := &Server{
		conf:     conf,
		viewer:   v,
		sessions: sessions,
		metrics:  m,
		page:     page,
		logger:   log.GetLogger(ctx).WithField("component", "server"),
	}

	return s, nil
}

func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(log.HttpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Header(log.HttpXRequestId, requestId)
		c.Set(log.CtxRequestId, requestId)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		c.Next()
		latency := time.Since(t)
		status := c.Writer.Status()

		log.GetLogger(c).Info("ip: ", c.ClientIP(), " method: ", c.Request.Method, " path: ",
			c.Request.URL.Path, " status: ", status, " latency: ", latency)
	}
}

func (s *Server) Start() {
	gin.SetMode(gin.ReleaseMode)
	router := s.SetUpRouter()
	pprof.Register(router)
	s.httpServer = &http.Server{
		Addr:    s.conf.Addr,
		Handler: router,
	}

	var err error
	if s.conf.SSLCert != "" && s.conf.SSLKey != "" {
		logrus.Infof("start https server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServeTLS(s.conf.SSLCert, s.conf.SSLKey)
	} else {
		logrus.Infof("start http server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

func (s *Server) Shutdown() {
	if s.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Error: err.Error(),
	})
}

// requestContext carries the request id and session into the search call
// while keeping the request's cancellation.
func requestContext(c *gin.Context, session string) context.Context {
	ctx := c.Request.Context()
	if rid, ok := c.Get(log.CtxRequestId); ok {
		ctx = context.WithValue(ctx, log.CtxRequestId, rid)
	}
	if session != "" {
		ctx = context.WithValue(ctx, log.CtxSessionId, session)
	}
	return ctx
}
