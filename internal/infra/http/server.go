// Package http serves the auth service API: login, registration, logout,
// role and user queries, plus the internal token validation endpoint the
// gateway calls.
package http

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fenixAlex88/technical-support/internal/config"
	"github.com/fenixAlex88/technical-support/internal/infra/cache"
	"github.com/fenixAlex88/technical-support/internal/infra/db"
	"github.com/fenixAlex88/technical-support/internal/infra/password"
	"github.com/fenixAlex88/technical-support/internal/infra/token"
	"github.com/fenixAlex88/technical-support/internal/usecase"
)

type Server struct {
	cfg     config.Config
	r       *gin.Engine
	service *usecase.AuthService
}

type ServerDeps struct {
	Service *usecase.AuthService
}

func NewServer(cfg config.Config, store *db.Store) (*Server, error) {
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTExpiry())
	if err != nil {
		return nil, err
	}
	identityCache := newIdentityCache(cfg)
	service := usecase.NewAuthService(
		db.NewUserRepository(store.DB),
		db.NewRoleRepository(store.DB),
		password.NewBcryptHasher(),
		codec,
		identityCache,
		cfg.CacheTTL(),
	)
	return NewServerWithDeps(cfg, ServerDeps{Service: service}), nil
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, r: r, service: deps.Service}
	s.routes()
	return s
}

func newIdentityCache(cfg config.Config) usecase.IdentityCache {
	if cfg.RedisAddr != "" {
		if redisCache, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err == nil {
			return redisCache
		}
		log.Printf("redis cache unavailable, falling back to memory cache")
	}
	return cache.NewMemory()
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := s.r.Group("/auth")
	{
		auth.POST("/login", s.handleLogin)
		auth.POST("/register", s.handleRegister)
		auth.POST("/logout", s.handleLogout)
		auth.GET("/roles", s.handleListRoles)
		auth.GET("/users", s.handleListUsers)
		auth.GET("/users/:id", s.handleGetUser)
	}

	// Gateway-only surface; the gateway never proxies /internal.
	s.r.POST("/internal/validate", s.handleValidateToken)
}

func (s *Server) Run() error {
	log.Printf("auth service listening on %s", s.cfg.HTTPAddr)
	return s.r.Run(s.cfg.HTTPAddr)
}

func (s *Server) Handler() *gin.Engine {
	return s.r
}
