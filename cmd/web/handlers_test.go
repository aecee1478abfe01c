package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp"
	"github.com/AzzMarci/deepverify-api/cmd/web/services"
	"github.com/AzzMarci/deepverify-api/phone"
	"github.com/AzzMarci/deepverify-api/types"
	"github.com/AzzMarci/deepverify-api/validator"
	"github.com/AzzMarci/deepverify-api/validator/validations"
	testLog "github.com/sirupsen/logrus/hooks/test"
)

// allPassCheckFn pretends every check ran and passed, without touching the network
func allPassCheckFn(provider string) validator.CheckFn {
	return func(ctx context.Context, parts types.EmailParts, options ...validator.ArtifactFn) validator.Result {
		var v validations.Validations
		var s validations.Steps

		for _, f := range []validations.Flag{validations.FSyntax, validations.FDomainHasIP, validations.FMXLookup, validations.FDisposable, validations.FProvider} {
			s.SetFlag(f)
		}

		v.SetFlag(validations.FSyntax)
		v.SetFlag(validations.FDomainHasIP)
		v.SetFlag(validations.FMXLookup)
		v.SetFlag(validations.FProvider)
		v.MarkAsValid()

		return validator.Result{
			Validations: v,
			Steps:       s,
			Email:       parts,
			Provider:    provider,
			MXHosts:     []string{"mx1." + parts.Domain},
		}
	}
}

func TestNewEmailValidationHandler(t *testing.T) {
	const maxBodySize = 1024
	logger, _ := testLog.NewNullLogger()

	svc := services.NewEmailService(allPassCheckFn("Gmail"), logger)
	handler := NewEmailValidationHandler(logger, &svc, maxBodySize)

	validRequestBody, err := json.Marshal(&dvhttp.EmailValidationRequest{Email: "john.doe@gmail.com"})
	if err != nil {
		t.Errorf("Test setup failed, %s", err)
		t.FailNow()
	}

	type wants struct {
		statusCode int
	}
	tests := []struct {
		name        string
		requestBody io.Reader
		contentType string
		want        wants
	}{
		{
			name:        "correct POST body",
			requestBody: bytes.NewReader(validRequestBody),
			contentType: "application/json",
			want: wants{
				statusCode: 200,
			},
		},
		{
			name:        "malformed POST body",
			requestBody: strings.NewReader("burp"),
			contentType: "application/json",
			want: wants{
				statusCode: 400,
			},
		},
		{
			name:        "nil POST body",
			requestBody: nil,
			contentType: "application/json",
			want: wants{
				statusCode: 400,
			},
		},
		{
			name:        "Too large POST body",
			requestBody: strings.NewReader(strings.Repeat(".", int(maxBodySize)+1)),
			contentType: "application/json",
			want: wants{
				statusCode: 400,
			},
		},
		{
			name:        "Bad JSON",
			requestBody: bytes.NewReader(validRequestBody[0 : len(validRequestBody)-1]), // stripping off the '}'
			contentType: "application/json",
			want: wants{
				statusCode: 400,
			},
		},
		{
			name:        "Missing email argument",
			requestBody: strings.NewReader(`{}`),
			contentType: "application/json",
			want: wants{
				statusCode: 400,
			},
		},
		{
			name:        "Wrong content type",
			requestBody: bytes.NewReader(validRequestBody),
			contentType: "text/plain",
			want: wants{
				statusCode: 400,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/validate/email", tt.requestBody)
			if tt.requestBody == nil {
				req.Body = nil
			}

			req.Header.Set("Content-Type", tt.contentType)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want.statusCode {
				t.Errorf("Status code = %d, want %d, body: %s", rec.Code, tt.want.statusCode, rec.Body.String())
			}
		})
	}

	t.Run("response shape", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/validate/email", bytes.NewReader(validRequestBody))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		var response dvhttp.EmailValidationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("Unable to decode the response %s", err)
		}

		if !response.Valid {
			t.Error("Expected the address to be reported valid")
		}

		if response.ConfidenceScore != 1.0 {
			t.Errorf("ConfidenceScore = %f, want 1.0", response.ConfidenceScore)
		}

		if response.Provider == nil || *response.Provider != "Gmail" {
			t.Errorf("Provider = %v, want Gmail", response.Provider)
		}

		if response.Suggestion != nil {
			t.Error("Expected the suggestion to be absent")
		}

		if response.Details.NormalizedEmail != "john.doe@gmail.com" {
			t.Errorf("NormalizedEmail = %q", response.Details.NormalizedEmail)
		}
	})
}

func TestNewPhoneValidationHandler(t *testing.T) {
	const maxBodySize = 1024
	logger, _ := testLog.NewNullLogger()

	svc := services.NewPhoneService(phone.NewNumberValidator("US", "IT"), logger)
	handler := NewPhoneValidationHandler(logger, &svc, maxBodySize)

	post := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodPost, "/api/validate/phone", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	t.Run("valid number", func(t *testing.T) {
		rec := post(t, `{"phone": "+393331234567"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("Status code = %d, body: %s", rec.Code, rec.Body.String())
		}

		var response dvhttp.PhoneValidationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("Unable to decode the response %s", err)
		}

		if !response.Valid {
			t.Error("Expected the number to be reported valid")
		}

		if response.InternationalFormat == nil || *response.InternationalFormat != "+393331234567" {
			t.Errorf("InternationalFormat = %v", response.InternationalFormat)
		}

		if response.CountryCode == nil || *response.CountryCode != "IT" {
			t.Errorf("CountryCode = %v", response.CountryCode)
		}
	})

	t.Run("garbage number", func(t *testing.T) {
		rec := post(t, `{"phone": "not-a-number"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("Status code = %d, body: %s", rec.Code, rec.Body.String())
		}

		var response dvhttp.PhoneValidationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("Unable to decode the response %s", err)
		}

		if response.Valid {
			t.Error("Expected the number to be reported invalid")
		}

		if response.ConfidenceScore != 0 {
			t.Errorf("ConfidenceScore = %f, want 0", response.ConfidenceScore)
		}

		if response.InternationalFormat != nil || response.Carrier != nil || response.LineType != nil {
			t.Error("Expected the optional fields to be absent")
		}
	})

	t.Run("missing phone argument", func(t *testing.T) {
		rec := post(t, `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Status code = %d, want 400", rec.Code)
		}
	})
}

func TestNewHealthHandler(t *testing.T) {
	logger, _ := testLog.NewNullLogger()
	handler := NewHealthHandler(logger)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Status code = %d, want 200", rec.Code)
	}

	var status map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Unable to decode the response %s", err)
	}

	if status["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", status["status"])
	}
}

func TestNewIndexHandler(t *testing.T) {
	logger, _ := testLog.NewNullLogger()
	handler := NewIndexHandler(logger, "test")

	t.Run("root", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status code = %d, want 200", rec.Code)
		}

		var meta map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
			t.Fatalf("Unable to decode the response %s", err)
		}

		if meta["version"] != "test" {
			t.Errorf("version = %v, want test", meta["version"])
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Status code = %d, want 404", rec.Code)
		}
	})
}
