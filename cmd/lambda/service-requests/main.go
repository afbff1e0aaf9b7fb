package main

import (
	"context"
	"net/http"

	"aya-cleaning-api/internal/handlers"
	"aya-cleaning-api/internal/repositories"
	"aya-cleaning-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var connections = lambda.GetConnectionManager()

func init() {
	// Build the storage client during the cold start rather than on the
	// first request. A failure here is reported per invocation.
	if _, err := connections.GetContainer(context.Background()); err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return handle(ctx, connections, event)
}

// handle serves one API Gateway event with the container held by cm
func handle(ctx context.Context, cm *lambda.ConnectionManager, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := cm.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).WithField("connection_error", repositories.IsConnection(err)).Error("Container unavailable")
		return internalError(err), nil
	}

	req, err := lambda.FromAPIGatewayProxyRequest(event)
	if err != nil {
		container.Logger.WithError(err).Warn("Failed to decode request body")
		req = &lambda.Request{
			Method:    event.HTTPMethod,
			Path:      event.Path,
			Headers:   event.Headers,
			Body:      []byte(event.Body),
			RequestID: event.RequestContext.RequestID,
		}
	}

	serviceRequestHandler := handlers.NewServiceRequestHandler(container.ServiceRequestService, container.Logger)

	resp, err := serviceRequestHandler.HandleCreate(ctx, req)
	if err != nil {
		return internalError(err), nil
	}

	return resp.ToAPIGatewayProxyResponse(), nil
}

func internalError(err error) events.APIGatewayProxyResponse {
	return handlers.NewMessageResponse(http.StatusInternalServerError, handlers.MessageCreateFailed, err.Error()).ToAPIGatewayProxyResponse()
}

func main() {
	awslambda.Start(handler)
}
