package server

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// reservedPrefixes are the viewer's own top-level routes.
var reservedPrefixes = map[string]bool{
	"api": true, "search": true, "event": true, "modal": true,
	"metrics": true, "healthz": true, "debug": true,
}

// mediaPrefixes returns the relative media bases that must be forwarded to
// the backend. Absolute bases (another host, presigned S3) are fetched by
// the browser directly.
func (s *Server) mediaPrefixes() []string {
	var candidates []string
	for _, base := range []string{s.conf.Media.ImageBase, s.conf.Media.VideoBase} {
		if !strings.HasPrefix(base, "/") || strings.HasPrefix(base, "//") {
			continue
		}
		prefix := strings.TrimSuffix(base, "/")
		if prefix == "" || reservedPrefixes[strings.SplitN(prefix[1:], "/", 2)[0]] {
			continue
		}
		candidates = append(candidates, prefix)
	}
	// a catch-all route already covers anything nested below it
	sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) < len(candidates[j]) })
	var prefixes []string
	for _, c := range candidates {
		covered := false
		for _, p := range prefixes {
			if strings.HasPrefix(c+"/", p+"/") {
				covered = true
				break
			}
		}
		if !covered {
			prefixes = append(prefixes, c)
		}
	}
	return prefixes
}

// setUpMediaProxy serves relative media prefixes from the backend, which
// owns the snapshot and recording files.
func (s *Server) setUpMediaProxy(router *gin.Engine) error {
	prefixes := s.mediaPrefixes()
	if len(prefixes) == 0 {
		return nil
	}
	target, err := url.Parse(s.conf.Backend.URL)
	if err != nil {
		return fmt.Errorf("parse backend url: %w", err)
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		s.logger.WithError(err).Warnf("proxy %s failed", r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	}
	handler := gin.WrapH(proxy)
	for _, prefix := range prefixes {
		router.GET(prefix+"/*path", handler)
		router.HEAD(prefix+"/*path", handler)
		s.logger.Infof("proxying %s/ to %s", prefix, target)
	}
	return nil
}
