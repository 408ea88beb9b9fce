package medicamenta

import (
	"context"
	"errors"
	"net/http"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

// do performs one API round trip and normalizes the outcome. Transport
// failures become *NetworkError, HTTP error statuses become the typed
// errors from parseError, and a 2xx response decodes into result.
// Every service operation goes through here.
func do(ctx context.Context, t *api.Transport, req *api.Request, result any) error {
	resp, err := t.DoJSON(ctx, req, result)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return nil
}

// decorateNotFound attaches resource context to a *NotFoundError so
// callers can tell which lookup missed. Other errors pass through.
func decorateNotFound(err error, resourceType, resourceID string) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		nf.ResourceType = resourceType
		nf.ResourceID = resourceID
	}
	return err
}

// validateID guards path parameters: an empty ID would change the route
// itself, so it is rejected before any I/O. Body and query fields are
// never validated locally; the API reports those.
func validateID(kind, id string) error {
	if id == "" {
		return &ValidationError{
			APIError: APIError{Message: kind + " ID cannot be empty"},
		}
	}
	return nil
}
