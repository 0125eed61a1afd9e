package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/delivery/http/v1"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

// Run serves HTTP until SIGINT or SIGTERM, then shuts the server down and
// closes the storage. It returns the process exit code.
func (a *App) Run() int {
	if a.cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := a.cfg.HTTP

	router := gin.New()
	a.registerRoutes(router)

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		a.logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		httpCfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			// Storage is closed only after in-flight requests are drained.
			"http-server": func(ctx context.Context) error {
				a.logger.Info().Msg("shutting down http server")
				err := server.Shutdown(ctx)
				if err != nil {
					a.logger.Error().
						Err(err).
						Msg("failed to shutdown http server")
				} else {
					a.logger.Info().Msg("shut down http server")
				}
				return errors.Join(err, a.closeStorage())
			},
		},
	)

	exitCode := <-wait
	a.logger.Info().
		Int("exit_code", exitCode).
		Msg("application exited")
	return exitCode
}

func (a *App) registerRoutes(router *gin.Engine) {
	handler := a.mustNewHandler()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{a.cfg.CORS.Origin}
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization")

	v1.RegisterRoutes(router, handler, cors.New(corsCfg))
}

func (a *App) mustNewHandler() v1.Handler {
	passwordCfg := a.cfg.Password
	hasher, err := services.NewPasswordHasher(passwordCfg.Hasher, passwordCfg.BcryptCost)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to create password hasher")
		panic(err)
	}

	jwtCfg := a.cfg.JWT
	tokens := services.NewTokenManager(jwtCfg.Issuer, []byte(jwtCfg.Secret), jwtCfg.TokenTTL)

	return v1.New(
		a.logger,
		services.NewAuthService(a.logger, a.storage, hasher, tokens),
		services.NewTaskService(a.logger, a.storage),
	)
}
