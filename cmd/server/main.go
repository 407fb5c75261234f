package main

import (
	"fmt"

	"github.com/gatekit/gatekit/internal/config"
	handlers "github.com/gatekit/gatekit/internal/handler/http"
	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/logsink"
	"github.com/gatekit/gatekit/internal/middleware"
	"github.com/gatekit/gatekit/internal/pipeline"
	"github.com/gatekit/gatekit/internal/server"
	"github.com/gatekit/gatekit/internal/token"
	"github.com/gatekit/gatekit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gatekit-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	logCfg := logsink.DefaultLeveledConfig(cfg.Log.Dir)
	logCfg.Console = cfg.Log.Console
	logCfg.FileOut = cfg.Log.FileOut
	leveled := logsink.NewLeveled(logCfg, log)
	defer leveled.Close()

	accessCfg := middleware.DefaultAccessLogConfig(cfg.AccessLog.Dir)
	accessCfg.Console = cfg.AccessLog.Console
	accessCfg.FileOut = cfg.AccessLog.FileOut
	accessLogger := middleware.NewAccessLogger(accessCfg, cfg.AccessLog.Tag, log)
	defer accessLogger.Close()

	codec := newCodec(cfg.App)
	handler := handlers.NewHandler(codec, log)

	// outermost layer first: access logging sees every response, including
	// ones short-circuited by inner layers
	svc := pipeline.Build(
		pipeline.WrapHandler(handler.Init()),
		accessLogger,
		middleware.NewTraceID(log),
		middleware.NewRateLimit(cfg.Pipeline.RPS, cfg.Pipeline.Burst),
		middleware.Denylist(cfg.Pipeline.Denylist...),
		middleware.NewAuth(codec, cfg.Pipeline.ExemptPaths...),
	)

	srv, err := server.NewServer(pipeline.HTTPHandler(svc), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	leveled.Infof("gatekit starting on %s", cfg.Server.HTTPAddress)
	srv.RunServer()
	leveled.Infof("gatekit stopped")
}

func newCodec(app config.App) *token.Codec[models.UserClaims, *models.UserClaims] {
	opts := make([]token.Option, 0, 2)
	if app.TokenSignKey != "" {
		opts = append(opts, token.WithSecret(app.TokenSignKey))
	}
	if app.TokenDuration > 0 {
		opts = append(opts, token.WithDuration(app.TokenDuration))
	}

	return token.NewCodec[models.UserClaims](opts...)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
