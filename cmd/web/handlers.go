package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp"
	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp/handlers"
	"github.com/AzzMarci/deepverify-api/cmd/web/services"
	"github.com/sirupsen/logrus"
)

const (
	failedRequestError  = "Request failed, unable to parse request body. Expected JSON."
	missingInputError   = "Request failed, missing input."
	failedResponseError = "Generating response failed."
)

// NewEmailValidationHandler constructs a HTTP handler that deals with e-mail validation requests
func NewEmailValidationHandler(logger logrus.FieldLogger, svc *services.EmailSvc, maxBodySize int64) http.HandlerFunc {

	logger = logger.WithField("handler", "validate email")
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		var req dvhttp.EmailValidationRequest

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		defer deferClose(r.Body, logger)

		body, err := dvhttp.GetBodyFromHTTPRequest(r, maxBodySize)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"error":          err,
				"content_length": r.ContentLength,
			}).Errorf("Error handling request %s", err)

			w.WriteHeader(http.StatusBadRequest)

			// err is expected to be safe to expose to the client
			writeErrorJSONResponse(logger, w, &dvhttp.EmailValidationResponse{Error: err.Error()})
			return
		}

		err = json.Unmarshal(body, &req)
		if err != nil {
			logger.WithError(err).Errorf("Error handling request body %s", err)

			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.EmailValidationResponse{Error: failedRequestError})
			return
		}

		if req.Email == "" {
			logger.Debug("Empty argument")
			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.EmailValidationResponse{Error: missingInputError})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()

		report, err := svc.Validate(ctx, req.Email)
		if err != nil {
			logger.WithError(err).Warn("Input refused")

			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.EmailValidationResponse{Error: err.Error()})
			return
		}

		vr := dvhttp.EmailValidationResponse{
			Valid:           report.Valid,
			Disposable:      report.Disposable,
			DomainExists:    report.DomainExists,
			MXFound:         report.MXFound,
			ConfidenceScore: report.ConfidenceScore,
			Details: dvhttp.EmailValidationDetails{
				NormalizedEmail: report.NormalizedEmail,
				Domain:          report.Domain,
				ValidationError: report.ValidationError,
				ChecksPerformed: report.ChecksPerformed,
			},
		}

		if report.Provider != "" {
			vr.Provider = &report.Provider
		}

		vr.PrepareResponse()

		response, err := json.Marshal(vr)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"response": response,
				"error":    err,
			}).Error("Failed to marshal the response")

			w.WriteHeader(http.StatusInternalServerError)
			writeErrorJSONResponse(logger, w, &dvhttp.EmailValidationResponse{Error: failedResponseError})
			return
		}

		logger.WithFields(logrus.Fields{
			"valid": report.Valid,
			"score": report.ConfidenceScore,
			"input": req.Email,
		}).Debugf("Email validation result")

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(response)
	}
}

// NewPhoneValidationHandler constructs a HTTP handler that deals with phone number validation requests
func NewPhoneValidationHandler(logger logrus.FieldLogger, svc *services.PhoneSvc, maxBodySize int64) http.HandlerFunc {

	logger = logger.WithField("handler", "validate phone")
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		var req dvhttp.PhoneValidationRequest

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		defer deferClose(r.Body, logger)

		body, err := dvhttp.GetBodyFromHTTPRequest(r, maxBodySize)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"error":          err,
				"content_length": r.ContentLength,
			}).Errorf("Error handling request %s", err)

			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.PhoneValidationResponse{Error: err.Error()})
			return
		}

		err = json.Unmarshal(body, &req)
		if err != nil {
			logger.WithError(err).Errorf("Error handling request body %s", err)

			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.PhoneValidationResponse{Error: failedRequestError})
			return
		}

		if req.Phone == "" {
			logger.Debug("Empty argument")
			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.PhoneValidationResponse{Error: missingInputError})
			return
		}

		report, err := svc.Validate(r.Context(), req.Phone)
		if err != nil {
			logger.WithError(err).Warn("Input refused")

			w.WriteHeader(http.StatusBadRequest)
			writeErrorJSONResponse(logger, w, &dvhttp.PhoneValidationResponse{Error: err.Error()})
			return
		}

		vr := dvhttp.PhoneValidationResponse{
			Valid:           report.Valid,
			ConfidenceScore: report.ConfidenceScore,
		}

		if report.Valid {
			lineType := report.LineType.String()
			vr.InternationalFormat = &report.InternationalFormat
			vr.Type = &lineType
			vr.LineType = &lineType
			vr.Timezone = report.Timezones

			if report.CountryCode != "" {
				vr.CountryCode = &report.CountryCode
			}

			if report.Country != "" {
				vr.Country = &report.Country
			}

			if report.Carrier != "" {
				vr.Carrier = &report.Carrier
			}
		}

		vr.PrepareResponse()

		response, err := json.Marshal(vr)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"response": response,
				"error":    err,
			}).Error("Failed to marshal the response")

			w.WriteHeader(http.StatusInternalServerError)
			writeErrorJSONResponse(logger, w, &dvhttp.PhoneValidationResponse{Error: failedResponseError})
			return
		}

		logger.WithFields(logrus.Fields{
			"valid": report.Valid,
			"score": report.ConfidenceScore,
			"input": req.Phone,
		}).Debugf("Phone validation result")

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(response)
	}
}

// NewIndexHandler serves static API metadata on the root path
func NewIndexHandler(logger logrus.FieldLogger, version string) http.HandlerFunc {

	logger = logger.WithField("handler", "index")
	response, err := json.Marshal(map[string]interface{}{
		"message":   "Advanced Email & Phone Validation API",
		"version":   version,
		"endpoints": []string{"/api/validate/email", "/api/validate/phone"},
		"status":    "active",
	})

	if err != nil {
		logger.WithError(err).Error("Failed to marshal the index response")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(response); err != nil {
			logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID)).
				WithError(err).Error("failed to write in index handler")
		}
	}
}

func NewHealthHandler(logger logrus.FieldLogger) http.HandlerFunc {

	logger = logger.WithField("handler", "health")
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logger.WithField(handlers.RequestID.String(), r.Context().Value(handlers.RequestID))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		_, err := w.Write([]byte(`{"status": "healthy", "message": "API is running"}`))
		if err != nil {
			logger.WithError(err).Error("failed to write in health handler")
		}
	}
}
