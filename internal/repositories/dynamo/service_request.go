package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"aya-cleaning-api/internal/models"
	"aya-cleaning-api/internal/repositories"
)

const entityName = "service_request"

// PutItemAPI is the part of the DynamoDB client the repository needs
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// throttlingCodes are API error codes that mean "try again later"
var throttlingCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"ThrottlingException":                    true,
	"RequestLimitExceeded":                   true,
	"InternalServerError":                    true,
}

// ServiceRequestRepository writes service requests to a DynamoDB table
type ServiceRequestRepository struct {
	client    PutItemAPI
	tableName string
	logger    *logrus.Logger
}

// NewServiceRequestRepository creates a DynamoDB-backed repository
func NewServiceRequestRepository(client PutItemAPI, tableName string, logger *logrus.Logger) *ServiceRequestRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &ServiceRequestRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put performs one unconditional PutItem for request
func (r *ServiceRequestRepository) Put(ctx context.Context, request *models.ServiceRequest) error {
	if err := request.Validate(); err != nil {
		return repositories.ValidationError(entityName, request.RequestID, err)
	}

	item, err := attributevalue.MarshalMap(request)
	if err != nil {
		return repositories.PutError(entityName, request.RequestID, "", fmt.Errorf("failed to marshal item: %w", err))
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return translateError(request.RequestID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"table":      r.tableName,
		"request_id": request.RequestID,
	}).Debug("Service request item written")

	return nil
}

// translateError keeps the API's own message as the failure detail
func translateError(id string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return repositories.PutError(entityName, id, err.Error(), fmt.Errorf("%w: %w", repositories.ErrWrite, err))
	}

	detail := apiErr.ErrorMessage()
	if detail == "" {
		detail = apiErr.ErrorCode()
	}

	sentinel := repositories.ErrWrite
	if throttlingCodes[apiErr.ErrorCode()] {
		sentinel = repositories.ErrUnavailable
	}

	return repositories.PutError(entityName, id, detail, fmt.Errorf("%w: %w", sentinel, err))
}
