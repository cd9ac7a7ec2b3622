package http

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed api/openapi.yml
var openapiSpec []byte

// NewOpenAPIRouter loads and validates the embedded API contract and builds
// a router for matching incoming requests against it.
func NewOpenAPIRouter() (routers.Router, error) {
	// uuid format checking is opt-in.
	openapi3.DefineStringFormat("uuid", openapi3.FormatOfStringForUUIDOfRFC4122)

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return gorillamux.NewRouter(doc)
}

// ValidationMiddleware rejects requests that do not conform to the API
// contract before they reach a handler. Routes outside the contract, like
// health and metrics, pass through untouched.
func ValidationMiddleware(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			// The validator consumes the body; buffer it so the handler
			// can read it again.
			var body []byte
			if req.Body != nil {
				body, err = io.ReadAll(req.Body)
				if err != nil {
					return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}

			if err = openapi3filter.ValidateRequest(context.Background(), input); err != nil {
				return errorJSON(ctx, http.StatusBadRequest, err.Error())
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			return next(ctx)
		}
	}
}
