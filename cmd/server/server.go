package main

import (
	"time"

	"github.com/JaimeStill/neurovia/internal/config"
	"github.com/JaimeStill/neurovia/internal/infrastructure"
	"github.com/JaimeStill/neurovia/pkg/module"
)

type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	router  *module.Router
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, infra)
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure) (*Server, error) {
	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, modules.App.Prefix())
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"model", infra.Bridge.Model(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		router:  router,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
