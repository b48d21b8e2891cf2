package drawsvc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// LambdaHandler adapts an http.Handler to API Gateway v2 HTTP events
type LambdaHandler struct {
	adapter *httpadapter.HandlerAdapterV2
}

// NewLambdaHandler wraps h for lambda.Start
func NewLambdaHandler(h http.Handler) *LambdaHandler {
	return &LambdaHandler{adapter: httpadapter.NewV2(h)}
}

// Handle proxies one API Gateway event through the wrapped handler
func (l *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := l.adapter.ProxyWithContext(ctx, req)
	if err != nil {
		slog.Error("Error processing request", "err", err)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       err.Error(),
		}, nil
	}
	return resp, nil
}
