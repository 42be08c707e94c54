package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

// Register wires hello routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Get a greeting",
		Tags:        []string{"hello"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LoggerFromContext(ctx).Debug("hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Data{Message: DefaultMessage}}, nil
}
