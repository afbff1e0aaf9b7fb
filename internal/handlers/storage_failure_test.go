package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"aya-cleaning-api/internal/repositories/dynamo"
	"aya-cleaning-api/internal/services"
	"aya-cleaning-api/pkg/lambda"
)

type failingPutItemClient struct {
	err   error
	calls int
}

func (f *failingPutItemClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.calls++
	return nil, f.err
}

func TestHandleCreate_DynamoDBFailures(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantBody  string
		wantLevel logrus.Level
	}{
		{
			name: "throttled",
			err: &smithy.GenericAPIError{
				Code:    "ProvisionedThroughputExceededException",
				Message: "ProvisionedThroughputExceeded",
			},
			wantBody:  `{"message":"Failed to create service request.","error":"ProvisionedThroughputExceeded"}`,
			wantLevel: logrus.WarnLevel,
		},
		{
			name:      "table missing",
			err:       &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "Requested resource not found"},
			wantBody:  `{"message":"Failed to create service request.","error":"Requested resource not found"}`,
			wantLevel: logrus.ErrorLevel,
		},
		{
			name:      "transport error",
			err:       errors.New("dial tcp: connection refused"),
			wantBody:  `{"message":"Failed to create service request.","error":"dial tcp: connection refused"}`,
			wantLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			client := &failingPutItemClient{err: tt.err}
			repo := dynamo.NewServiceRequestRepository(client, "AyaCleaningServiceRequests", logger)
			handler := NewServiceRequestHandler(services.NewServiceRequestService(repo, services.WithLogger(logger)), logger)

			resp, err := handler.HandleCreate(context.Background(), &lambda.Request{Body: []byte(validBody)})
			if err != nil {
				t.Fatalf("HandleCreate() returned error: %v", err)
			}

			if resp.StatusCode != http.StatusInternalServerError {
				t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
			}
			assertHeaders(t, resp.Headers)
			if got := string(resp.Body); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
			if client.calls != 1 {
				t.Errorf("PutItem called %d times, want 1", client.calls)
			}

			last := hook.LastEntry()
			if last == nil {
				t.Fatal("no log entry written")
			}
			if last.Level != tt.wantLevel {
				t.Errorf("log level = %s, want %s", last.Level, tt.wantLevel)
			}
		})
	}
}
