package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/scriptkit/scriptkit-bridge/audit"
	"github.com/scriptkit/scriptkit-bridge/auth"
	"github.com/scriptkit/scriptkit-bridge/bridgehttp"
	"github.com/scriptkit/scriptkit-bridge/config"
	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/scriptkit/scriptkit-bridge/logx"
	"github.com/scriptkit/scriptkit-bridge/registry"
	"github.com/scriptkit/scriptkit-bridge/rpc"
	"github.com/scriptkit/scriptkit-bridge/stream"
	"github.com/spf13/cobra"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bridge's HTTP/JSON-RPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger := logx.NewDefaultLogger()

	token, err := auth.LoadOrCreateToken(cfg.ResolvedTokenPath())
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	var validator auth.TokenValidator = auth.NewStaticTokenValidator(token)
	if cfg.JWKS.URL != "" {
		jwksValidator, err := auth.NewJWKSTokenValidator(auth.JWKSConfig{
			JWKSURL:          cfg.JWKS.URL,
			ExpectedIssuer:   cfg.JWKS.Issuer,
			ExpectedAudience: cfg.JWKS.Audience,
		}, nil)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		validator = jwksValidator
	}

	var recorder rpc.AuditRecorder
	if !cfg.DisableAudit {
		rec, err := audit.NewRecorder(cfg.ResolvedAuditLogPath())
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		defer rec.Close()
		recorder = rec
	}

	var streams *stream.Hub
	if cfg.EnableSSE {
		streams = stream.NewHub()
	}

	reg := &registry.Registry{
		Scripts:    hostapi.NoopScriptSource{},
		Scriptlets: hostapi.NoopScriptletSource{},
		AppState:   hostapi.NoopAppStateSource{},
		Window:     hostapi.NoopWindowController{},
		Executor:   hostapi.NoopPendingExecutor{},
		Logger:     logger,
		Streams:    streams,
	}

	handler := &rpc.Handler{
		Registry:          reg,
		Version:           version,
		ValidateArguments: cfg.ValidateArguments,
		Audit:             recorder,
		AuditAllMethods:   cfg.AuditAllMethods,
		Logger:            logger,
	}

	srv, err := bridgehttp.Listen(net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.Port)))
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	srv.Handler = handler
	srv.Validator = validator
	srv.Logger = logger
	srv.Version = version
	srv.DiscoveryPath = cfg.DiscoveryFilePath()
	srv.Streams = streams

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("listening on %s", srv.Addr().String())
	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	logger.Info("shutting down")
	return srv.Stop()
}
