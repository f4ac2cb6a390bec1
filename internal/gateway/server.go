package gateway

import (
	"log"
	"net/http"
	"net/http/httputil"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fenixAlex88/technical-support/api/clients/identity"
	"github.com/fenixAlex88/technical-support/internal/config"
	"github.com/fenixAlex88/technical-support/internal/domain"
)

// identityHeaders are set by the gateway for downstream services and
// stripped from inbound requests so clients cannot forge them.
var identityHeaders = []string{"X-User-Id", "X-User-Name", "X-User-Email", "X-User-Roles"}

type Server struct {
	cfg      config.Config
	r        *gin.Engine
	filter   *Filter
	backends []Backend
	proxy    *httputil.ReverseProxy
}

type ServerDeps struct {
	Validator TokenValidator
	Backends  []Backend
}

func NewServer(cfg config.Config) (*Server, error) {
	validator := identity.NewClient(cfg.AuthServiceURL, identity.WithTimeout(cfg.AuthTimeout()))
	backends, err := ParseRouteBackends(cfg.RouteBackends)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, ServerDeps{Validator: validator, Backends: backends})
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) (*Server, error) {
	routeRules, err := ParseRouteRoles(cfg.RouteRoles)
	if err != nil {
		return nil, err
	}
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		r:        r,
		filter:   NewFilter(ParseExemptPaths(cfg.ExemptPaths), routeRules, deps.Validator),
		backends: deps.Backends,
	}
	s.proxy = &httputil.ReverseProxy{
		Director: func(*http.Request) {},
		ErrorHandler: func(w http.ResponseWriter, req *http.Request, err error) {
			log.Printf("proxy error for %s: %v", req.URL.Path, err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	s.r.NoRoute(s.handleProxy)
}

func (s *Server) handleProxy(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/internal/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	decision := s.filter.Evaluate(c.Request.Context(), path, c.GetHeader("Authorization"))
	if decision.Outcome == OutcomeReject {
		c.JSON(decision.Status, gin.H{"error": decision.Reason})
		return
	}

	backend, ok := MatchBackend(s.backends, path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no route"})
		return
	}

	for _, header := range identityHeaders {
		c.Request.Header.Del(header)
	}
	if decision.Identity != nil {
		applyIdentityHeaders(c.Request, *decision.Identity)
	}

	c.Request.URL.Scheme = backend.Target.Scheme
	c.Request.URL.Host = backend.Target.Host
	c.Request.Host = backend.Target.Host
	s.proxy.ServeHTTP(c.Writer, c.Request)
}

func applyIdentityHeaders(req *http.Request, id domain.Identity) {
	req.Header.Set("X-User-Id", strconv.FormatInt(id.ID, 10))
	req.Header.Set("X-User-Name", id.Name)
	req.Header.Set("X-User-Email", id.Email)
	req.Header.Set("X-User-Roles", strings.Join(id.Roles, ","))
}

func (s *Server) Run() error {
	log.Printf("gateway listening on %s", s.cfg.HTTPAddr)
	return s.r.Run(s.cfg.HTTPAddr)
}

func (s *Server) Handler() *gin.Engine {
	return s.r
}
