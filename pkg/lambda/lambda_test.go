package lambda

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"aya-cleaning-api/internal/config"
)

func TestFromAPIGatewayProxyRequest(t *testing.T) {
	tests := []struct {
		name     string
		event    events.APIGatewayProxyRequest
		wantBody string
		wantErr  bool
	}{
		{
			name:     "plain body",
			event:    events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/service-requests", Body: `{"a":1}`},
			wantBody: `{"a":1}`,
		},
		{
			name:     "missing body",
			event:    events.APIGatewayProxyRequest{HTTPMethod: "POST"},
			wantBody: "",
		},
		{
			name: "base64 body",
			event: events.APIGatewayProxyRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)),
				IsBase64Encoded: true,
			},
			wantBody: `{"a":1}`,
		},
		{
			name:    "bad base64",
			event:   events.APIGatewayProxyRequest{Body: "%%%", IsBase64Encoded: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := FromAPIGatewayProxyRequest(tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromAPIGatewayProxyRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if string(req.Body) != tt.wantBody {
				t.Errorf("Body = %q, want %q", req.Body, tt.wantBody)
			}
			if req.Method != tt.event.HTTPMethod || req.Path != tt.event.Path {
				t.Errorf("Method/Path = %q %q", req.Method, req.Path)
			}
		})
	}
}

func TestResponse_ToAPIGatewayProxyResponse(t *testing.T) {
	resp := &Response{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"ok":true}`),
	}

	got := resp.ToAPIGatewayProxyResponse()
	if got.StatusCode != 201 || got.Body != `{"ok":true}` || got.Headers["Content-Type"] != "application/json" {
		t.Errorf("ToAPIGatewayProxyResponse() = %+v", got)
	}
}

func memoryConfig() (*config.Config, error) {
	return &config.Config{
		Storage: config.StorageConfig{Backend: config.StorageBackendMemory, TableName: config.DefaultTableName},
		Logging: config.LoggingConfig{Level: "warn"},
	}, nil
}

func TestConnectionManager_ReusesContainer(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return memoryConfig()
	})

	first, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	second, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}

	if first != second {
		t.Error("GetContainer() built a second container")
	}
	if loads != 1 {
		t.Errorf("configuration loaded %d times, want 1", loads)
	}
	if !cm.IsHealthy() {
		t.Error("IsHealthy() = false after initialization")
	}
	if cm.LastUsed().IsZero() {
		t.Error("LastUsed() is zero")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if _, err := cm.GetContainer(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("GetContainer() after Cleanup error = %v, want ErrClosed", err)
	}
}

func TestConnectionManager_InitFailureIsSticky(t *testing.T) {
	loadErr := errors.New("bad config")
	cm := NewConnectionManager(func() (*config.Config, error) { return nil, loadErr })

	for i := 0; i < 2; i++ {
		if _, err := cm.GetContainer(context.Background()); !errors.Is(err, loadErr) {
			t.Errorf("GetContainer() error = %v, want %v", err, loadErr)
		}
	}
	if cm.IsHealthy() {
		t.Error("IsHealthy() = true after failed initialization")
	}
}
