package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aya-cleaning-api/internal/models"
	"aya-cleaning-api/internal/repositories"
	"aya-cleaning-api/internal/services"
	"aya-cleaning-api/pkg/lambda"
)

// Response messages
const (
	MessageBodyMissing   = "Request body is missing."
	MessageInvalidJSON   = "Invalid JSON in request body."
	MessageMissingFields = "Missing required fields: customerName, serviceType, location."
	MessageCreateFailed  = "Failed to create service request."
	MessageCreated       = "Service request created successfully."
)

// ServiceRequestHandler handles the create service request endpoint
type ServiceRequestHandler struct {
	service services.ServiceRequestService
	logger  *logrus.Logger
}

// NewServiceRequestHandler creates a new service request handler
func NewServiceRequestHandler(service services.ServiceRequestService, logger *logrus.Logger) *ServiceRequestHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ServiceRequestHandler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate validates the request body and stores a new service request.
// It always returns a complete response and a nil error.
func (h *ServiceRequestHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	log := h.logger.WithFields(logrus.Fields{
		"aws_request_id": req.RequestID,
		"method":         req.Method,
		"path":           req.Path,
	})
	log.WithField("body", string(req.Body)).Debug("Received event")

	if len(req.Body) == 0 {
		log.Warn("Request body is missing")
		return NewMessageResponse(http.StatusBadRequest, MessageBodyMissing, ""), nil
	}

	var payload interface{}
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		log.WithError(err).Warn("Error parsing request body")
		return NewMessageResponse(http.StatusBadRequest, MessageInvalidJSON, ""), nil
	}

	// Required fields must be JSON strings; a number or object counts as missing.
	created, err := h.service.CreateServiceRequest(ctx, createRequestFromPayload(payload))
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			log.WithError(err).Warn("Service request rejected")
			return NewMessageResponse(http.StatusBadRequest, MessageMissingFields, ""), nil
		}

		detail := err.Error()
		var storageErr *services.StorageError
		if errors.As(err, &storageErr) {
			detail = storageErr.Detail()
		}
		if repositories.IsUnavailable(err) {
			log.WithError(err).Warn("Storage unavailable, service request not created")
		} else {
			log.WithError(err).Error("Error creating service request")
		}
		return NewMessageResponse(http.StatusInternalServerError, MessageCreateFailed, detail), nil
	}

	log.WithField("request_id", created.RequestID).Info("Service request created successfully")
	return jsonResponse(http.StatusCreated, CreatedResponse{
		Message:   MessageCreated,
		RequestID: created.RequestID,
		Status:    created.Status,
	}), nil
}

// CreateServiceRequest serves the same contract through gin for the local server
func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			h.logger.WithError(err).Warn("Failed to read request body")
			body = nil
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	resp, _ := h.HandleCreate(c.Request.Context(), &lambda.Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Headers:   headers,
		Body:      body,
		RequestID: c.GetHeader("X-Request-ID"),
	})

	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}

// createRequestFromPayload picks the required fields out of a decoded body.
// Anything that is not a JSON object, and any field that is not a string,
// counts as missing.
func createRequestFromPayload(payload interface{}) *services.CreateServiceRequestRequest {
	fields, _ := payload.(map[string]interface{})
	str := func(key string) string {
		s, _ := fields[key].(string)
		return s
	}
	return &services.CreateServiceRequestRequest{
		CustomerName: str("customerName"),
		ServiceType:  str("serviceType"),
		Location:     str("location"),
	}
}

// CreatedResponse is the body returned for a stored service request
type CreatedResponse struct {
	Message   string                      `json:"message"`
	RequestID string                      `json:"requestId"`
	Status    models.ServiceRequestStatus `json:"status"`
}
