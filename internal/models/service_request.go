package models

import (
	"fmt"
	"time"
)

// TimestampFormat is the ISO-8601 UTC form with millisecond precision used
// for createdAt/updatedAt. It sorts lexically in time order.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// ServiceRequestStatus represents the lifecycle state of a service request
type ServiceRequestStatus string

const (
	// StatusPending is the only status assigned at creation
	StatusPending ServiceRequestStatus = "Pending"
)

// ServiceRequest represents a cleaning service request as persisted
type ServiceRequest struct {
	RequestID    string               `json:"requestId" db:"request_id" dynamodbav:"requestId"`
	CustomerName string               `json:"customerName" db:"customer_name" dynamodbav:"customerName"`
	ServiceType  string               `json:"serviceType" db:"service_type" dynamodbav:"serviceType"`
	Location     string               `json:"location" db:"location" dynamodbav:"location"`
	Status       ServiceRequestStatus `json:"status" db:"status" dynamodbav:"status"`
	CreatedAt    string               `json:"createdAt" db:"created_at" dynamodbav:"createdAt"`
	UpdatedAt    string               `json:"updatedAt" db:"updated_at" dynamodbav:"updatedAt"`
}

// NewServiceRequest creates a pending service request. Both timestamps are
// taken from the single instant now.
func NewServiceRequest(requestID, customerName, serviceType, location string, now time.Time) *ServiceRequest {
	timestamp := FormatTimestamp(now)
	return &ServiceRequest{
		RequestID:    requestID,
		CustomerName: customerName,
		ServiceType:  serviceType,
		Location:     location,
		Status:       StatusPending,
		CreatedAt:    timestamp,
		UpdatedAt:    timestamp,
	}
}

// FormatTimestamp renders t in TimestampFormat
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// Validate checks that every persisted field is populated
func (r *ServiceRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"requestId", r.RequestID},
		{"customerName", r.CustomerName},
		{"serviceType", r.ServiceType},
		{"location", r.Location},
		{"status", string(r.Status)},
		{"createdAt", r.CreatedAt},
		{"updatedAt", r.UpdatedAt},
	}

	for _, f := range fields {
		if err := ValidateRequired(f.value, f.name); err != nil {
			return err
		}
	}

	if _, err := time.Parse(TimestampFormat, r.CreatedAt); err != nil {
		return &ValidationError{
			Field:   "createdAt",
			Message: fmt.Sprintf("createdAt must use format %s", TimestampFormat),
			Value:   r.CreatedAt,
		}
	}

	return nil
}

// IsPending returns true if the request has not been picked up yet
func (r *ServiceRequest) IsPending() bool {
	return r.Status == StatusPending
}
