package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/AzzMarci/deepverify-api/cmd/web/config"
	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp"
	"github.com/AzzMarci/deepverify-api/validator"
	"github.com/sirupsen/logrus"
)

func headersToHTTPHeaders(headers config.Headers) http.Header {
	h := http.Header{}
	for name, value := range headers {
		h.Add(name, value)
	}

	return h
}

func newLogger(conf config.Config) (*logrus.Logger, error) {
	var err error
	logger := logrus.New()

	if conf.Server.Log.Format == config.LFJSON {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{}
	}

	logger.Out = os.Stdout
	logger.Level, err = logrus.ParseLevel(conf.Server.Log.Level)

	return logger, err
}

func configureProfiler(mux *http.ServeMux, conf config.Config) {
	var prefix string
	if conf.Server.Profiler.Prefix != "" {
		prefix = conf.Server.Profiler.Prefix
	} else {
		prefix = "debug"
	}

	mux.HandleFunc(`/`+prefix+`/pprof/`, pprof.Index)
	mux.HandleFunc(`/`+prefix+`/pprof/cmdline`, pprof.Cmdline)
	mux.HandleFunc(`/`+prefix+`/pprof/profile`, pprof.Profile)
	mux.HandleFunc(`/`+prefix+`/pprof/symbol`, pprof.Symbol)
	mux.HandleFunc(`/`+prefix+`/pprof/trace`, pprof.Trace)
}

// newResolver builds a resolver that dials the given host for DNS queries, the stdlib default applies when no
// host is configured.
func newResolver(host string) *net.Resolver {
	if host == "" {
		return net.DefaultResolver
	}

	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, network, net.JoinHostPort(host, `53`))
		},
	}
}

func deferClose(toClose io.Closer, log logrus.FieldLogger) {
	if toClose == nil {
		return
	}

	err := toClose.Close()
	if err != nil {
		if log == nil {
			fmt.Printf("error failed to close handle %s", err)
			return
		}

		log.WithError(err).Error("Failed to close handle")
	}
}

func writeErrorJSONResponse(logger logrus.FieldLogger, w http.ResponseWriter, response dvhttp.DVResponse) {
	w.Header().Set("Content-Type", "application/json")

	response.PrepareResponse()
	b, err := json.Marshal(response)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal response")
	}

	_, err = w.Write(b)
	if err != nil {
		logger.WithError(err).Error("Failed to write response")
	}
}

func mapValidatorTypeToValidatorFn(vt config.ValidatorType, v validator.EmailValidator) validator.CheckFn {
	switch vt {
	case config.VTLookup:
		return v.CheckWithLookup
	case config.VTStructure:
		return v.CheckWithSyntax
	}

	panic(fmt.Sprintf("Incorrect validator %q configured.", vt))
}
