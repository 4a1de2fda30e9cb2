package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/unievents/internal/common"
	"github.com/dmitrijs2005/unievents/internal/logging"
)

// Interceptor may modify req before it is sent. A non-nil error aborts the
// request.
type Interceptor func(ctx context.Context, req *http.Request) error

// TokenSource is the read side of the credential store.
type TokenSource interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// NewBearerInterceptor attaches "Authorization: Bearer <token>" when a
// token is stored. A failing read is logged and the request goes out
// without the header.
func NewBearerInterceptor(tokens TokenSource, logger logging.Logger) Interceptor {
	if logger == nil {
		logger = logging.Nop()
	}
	return func(ctx context.Context, req *http.Request) error {
		token, ok, err := tokens.Get(ctx, common.TokenKey)
		if err != nil {
			logger.Warn(ctx, "reading stored token failed, sending request without it", "error", err)
			return nil
		}
		if ok && token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		}
		return nil
	}
}
