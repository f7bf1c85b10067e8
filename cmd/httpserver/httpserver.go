// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/swagbank/internal/ledgerdelivery"
	"github.com/go-petr/swagbank/internal/ledgerservice"
	"github.com/go-petr/swagbank/internal/middleware"
	"github.com/go-petr/swagbank/internal/monitoring"
	"github.com/go-petr/swagbank/pkg/configpkg"
	"github.com/go-petr/swagbank/pkg/tokenpkg"
)

// Server holds the ledger service, handlers router and configuration.
type Server struct {
	Service    *ledgerservice.Service
	TokenMaker tokenpkg.Maker
	Engine     *gin.Engine
	Config     configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with the ledger routes.
func New(service *ledgerservice.Service, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.NewMaker(config.TokenKind, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := ledgerdelivery.RegisterValidators(v); err != nil {
			return nil, errors.New("cannot register validators")
		}
	}

	handler := ledgerdelivery.NewHandler(service)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/metrics", gin.WrapH(monitoring.Handler()))

	handler.Register(engine, engine.Group("/", middleware.AuthMiddleware(tokenMaker)))

	server := &Server{
		Service:    service,
		TokenMaker: tokenMaker,
		Engine:     engine,
		Config:     config,
	}

	return server, nil
}
