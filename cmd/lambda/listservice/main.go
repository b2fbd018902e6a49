package main

import (
	"context"
	"encoding/json"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"github.com/teurajarvi/listservice/internal/config"
	"github.com/teurajarvi/listservice/pkg/lambda"
	"github.com/teurajarvi/listservice/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	// Fall back to the Lambda invocation ID when API Gateway sent none.
	if req.RequestID == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			req.RequestID = lc.AwsRequestID
		}
	}
	return container.ListHandler.Handle(ctx, req)
}

func handler(ctx context.Context, event json.RawMessage) (interface{}, error) {
	resp, err := lambda.Invoke(ctx, event, handle)
	if err != nil {
		container.Logger.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to decode invocation event")
		return nil, err
	}
	return resp, nil
}

func main() {
	awslambda.Start(handler)
}
