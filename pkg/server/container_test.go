package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/teurajarvi/listservice/internal/config"
	"github.com/teurajarvi/listservice/pkg/lambda"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvTest,
		Port:        "8080",
		ServiceName: "listservice",
		Logging: config.LoggingConfig{
			Level:  "DEBUG",
			Format: config.LogFormatJSON,
		},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	var logs bytes.Buffer

	container, err := NewContainer(testConfig(), WithLogOutput(&logs))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container == nil {
		t.Fatal("Container is nil")
	}
	if container.ListHandler == nil {
		t.Error("ListHandler is nil")
	}
	if container.Logger == nil {
		t.Fatal("Logger is nil")
	}
	if container.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level from config, got %v", container.Logger.GetLevel())
	}

	// Test cleanup
	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainerRequiresConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Fatal("Expected error for nil config")
	}
}

// TestContainerServesRequests verifies the wired handler logs through the configured logger
func TestContainerServesRequests(t *testing.T) {
	var logs bytes.Buffer

	container, err := NewContainer(testConfig(), WithLogOutput(&logs))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	resp := container.ListHandler.Handle(context.Background(), &lambda.Request{
		Method: "POST",
		Path:   "/v1/list/tail",
		Body:   []byte(`{"list": ["a", "b", "c"], "n": 2}`),
	})

	if resp.StatusCode != 200 || string(resp.Body) != `{"result":["b","c"]}` {
		t.Errorf("Unexpected response %d %s", resp.StatusCode, resp.Body)
	}
	if !bytes.Contains(logs.Bytes(), []byte("List request served")) {
		t.Errorf("Expected debug log line, got %q", logs.String())
	}

	rc := container.RouterConfig()
	if rc.ListHandler != container.ListHandler || rc.ServiceName != "listservice" || rc.Version != Version {
		t.Errorf("Unexpected router config %+v", rc)
	}
}
