package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"products-api/internal/router"
	"products-api/pkg/lambda"
	"products-api/pkg/server"
)

var manager *server.Manager

func init() {
	manager = server.GetManager()

	// Fail the cold start rather than the first invocation
	if _, err := manager.GetContainer(context.Background()); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := manager.GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return handle(ctx, container, event), nil
}

// handle converts the proxy event, dispatches it and converts the response back
func handle(ctx context.Context, container *server.Container, event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	requestID := event.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	ctx = router.ContextWithRequestID(ctx, requestID)

	container.Logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"http_method": event.HTTPMethod,
		"path":        event.Path,
		"resource":    event.Resource,
		"stage":       event.RequestContext.Stage,
	}).Info("Event received")

	req, err := lambda.FromProxyRequest(event)
	if err != nil {
		// Dispatch the undecoded body; handlers that need JSON reject it
		container.Logger.WithError(err).Warn("Failed to decode event body")
		req = &lambda.Request{
			Method:      event.HTTPMethod,
			Path:        event.Path,
			Headers:     event.Headers,
			QueryParams: event.QueryStringParameters,
			PathParams:  event.PathParameters,
			Body:        []byte(event.Body),
		}
	}

	return lambda.ToProxyResponse(container.Dispatcher.Dispatch(ctx, req))
}

func main() {
	awslambda.Start(handler)
}
