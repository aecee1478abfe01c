package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/AzzMarci/deepverify-api/cmd/web/config"
	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp"
	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp/handlers"
	"github.com/AzzMarci/deepverify-api/cmd/web/services"
	"github.com/AzzMarci/deepverify-api/phone"
	"github.com/AzzMarci/deepverify-api/runtimer"
	"github.com/AzzMarci/deepverify-api/validator"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Version contains the app version, the value is changed during compile time to the appropriate Git tag
var Version = "dev"

const maxBodySize = 1 << 20 // 1 MB

func main() {
	var conf config.Config
	var err error

	// A .env file is optional, the environment itself takes precedence
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.toml"
	}

	conf, err = config.NewConfig(configFile)
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(conf)
	if err != nil {
		panic(err)
	}

	logger.WithFields(logrus.Fields{
		"version": Version,
	}).Info("Starting up...")

	if conf.Server.Validator.EmailChecks == "" {
		conf.Server.Validator.EmailChecks = config.VTLookup
	}

	resolver := newResolver(conf.Server.Validator.Resolver)
	emailValidator := validator.NewEmailAddressValidator(resolver, conf.Server.Validator.LookupTimeout.AsDuration())
	checkFn := mapValidatorTypeToValidatorFn(conf.Server.Validator.EmailChecks, emailValidator)

	emailSvc := services.NewEmailService(checkFn, logger)
	phoneSvc := services.NewPhoneService(phone.NewNumberValidator(conf.Server.Phone.Regions...), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", NewIndexHandler(logger, Version))
	mux.HandleFunc("/api/health", NewHealthHandler(logger))
	mux.HandleFunc("/api/validate/email", NewEmailValidationHandler(logger, &emailSvc, maxBodySize))
	mux.HandleFunc("/api/validate/phone", NewPhoneValidationHandler(logger, &phoneSvc, maxBodySize))

	if conf.Server.Profiler.Enable {
		configureProfiler(mux, conf)
	}

	var handler http.Handler = mux
	if len(conf.Server.CORS.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: conf.Server.CORS.AllowedOrigins,
			AllowedHeaders: conf.Server.CORS.AllowedHeaders,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		})

		handler = c.Handler(handler)
	}

	wrappers := []func(h http.Handler) http.Handler{
		handlers.WithGzipHandler(),
		handlers.WithHeaders(headersToHTTPHeaders(conf.Server.Headers)),
		handlers.WithRequestLogger(logger),
	}

	if conf.Server.PathStrip != "" {
		wrappers = append(wrappers, handlers.WithPathStrip(logger, conf.Server.PathStrip))
	}

	lw := logger.WriterLevel(logger.Level)
	defer func() {
		_ = lw.Close()
	}()

	s := dvhttp.BuildHTTPServer(handler, conf, logger, lw, wrappers...)

	rt := runtimer.New(os.Interrupt, syscall.SIGTERM)
	rt.RegisterCallback(func(sig os.Signal) {
		logger.WithField("signal", sig).Info("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	})

	logger.WithFields(logrus.Fields{
		"listen_on": conf.Server.ListenOn,
	}).Info("Done, serving requests")

	err = s.ServeDV()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("HTTP server stopped %s", err)
	}

	rt.Wait()
}
