package dvhttp

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/AzzMarci/deepverify-api/cmd/web/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBuildHTTPServer(t *testing.T) {
	mux := http.NewServeMux()

	cfg := config.Config{}
	cfg.Server.ListenOn = "127.0.0.1:0"
	cfg.Server.ConnectionLimit = 1

	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	logWriter := &bytes.Buffer{}

	got := BuildHTTPServer(mux, cfg, logger, logWriter)
	if got == nil {
		t.Fatal("Expected a server")
	}

	defer func() {
		_ = got.listener.Close()
	}()

	if got.server.Addr != cfg.Server.ListenOn {
		t.Errorf("Bad config propagation, expected: %q got: %q\ndetails: %+v", cfg.Server.ListenOn, got.server.Addr, got.server)
	}

	if gotLogWriter := logWriter.String(); gotLogWriter != "" {
		t.Errorf("Expected no server errors to be logged, got %q", gotLogWriter)
	}
}
