// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pinboard/config"
	"pinboard/internal/delivery/http/middleware"
	"pinboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	CredentialHandler *handler.CredentialHandler
	RecordHandler     *handler.RecordHandler
	GateMiddleware    *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	credentialHandler *handler.CredentialHandler
	recordHandler     *handler.RecordHandler
	gateMiddleware    *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		credentialHandler: params.CredentialHandler,
		recordHandler:     params.RecordHandler,
		gateMiddleware:    params.GateMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential routes; these mint and return tokens, so they sit in
	// front of the gate.
	e.POST("/signup", r.credentialHandler.Signup)
	e.POST("/signin", r.credentialHandler.Signin)

	// Record routes behind the access gate. Reads are always gated; writes
	// are gated unless configuration opens them up.
	recordGroup := e.Group("/records")
	recordGroup.GET("", r.recordHandler.ListRecords, r.gateMiddleware.RequireToken)

	guardWrites := r.cfg.Records == nil || r.cfg.Records.GuardWrites
	if guardWrites {
		recordGroup.POST("", r.recordHandler.CreateRecord, r.gateMiddleware.RequireToken)
	} else {
		recordGroup.POST("", r.recordHandler.CreateRecord)
	}
}
