package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/obsbank/obsctl/pkg/buildversion"
	"github.com/obsbank/obsctl/pkg/session"
)

// Client talks to the OBS banking API. A single client is shared by all
// commands; every request it issues goes through the interceptor
// Transport, so token refresh and global 401 handling apply uniformly.
type Client struct {
	endpoint   string
	store      *session.Store
	httpClient *retryablehttp.Client
	validate   *validator.Validate
}

type retryableRequestKey struct{}

func NewClient(endpoint string, store *session.Store, onUnauthorized func()) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.RetryMax = 3
	httpClient.HTTPClient.Transport = &Transport{
		Store:          store,
		OnUnauthorized: onUnauthorized,
	}
	httpClient.CheckRetry = checkRetry
	httpClient.ErrorHandler = errorHandler
	httpClient.RequestLogHook = markRetriedRequests

	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		store:      store,
		httpClient: httpClient,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *Client) Store() *session.Store {
	return c.store
}

// Only GETs are re-issued. A transfer that died mid-flight must surface
// as an error, not silently post twice.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if idempotent, ok := ctx.Value(retryableRequestKey{}).(bool); ok && !idempotent {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// errorHandler mimics net/http rather than doing anything fancy like the
// retryablehttp library.
func errorHandler(resp *http.Response, err error, attempt int) (*http.Response, error) {
	return resp, err
}

func markRetriedRequests(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt > 0 {
		req.Header.Set(retryMarkerHeader, strconv.Itoa(attempt))
	}
}

func (c *Client) newRequest(method string, path string, query url.Values, body interface{}) (*retryablehttp.Request, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rawBody interface{}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		rawBody = b
	}

	req, err := retryablehttp.NewRequest(method, u, rawBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", buildversion.GetUserAgent())
	req.Header.Set("X-Request-Id", uuid.New().String())

	ctx := context.WithValue(req.Context(), retryableRequestKey{}, method == http.MethodGet)
	return req.WithContext(ctx), nil
}

func (c *Client) doJSON(method string, path string, query url.Values, body interface{}, out interface{}) error {
	req, err := c.newRequest(method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}

	return nil
}

// download fetches a binary response (invoice or statement PDF) and
// returns the bytes plus the server-suggested filename, if any.
func (c *Client) download(path string) ([]byte, string, error) {
	req, err := c.newRequest("GET", path, nil, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", errorFromResponse(resp)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read response body")
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}

	return b, filename, nil
}

func (c *Client) validateRequest(req interface{}) error {
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs := validator.ValidationErrors{}
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "failed to validate request")
	}

	fields := make([]string, 0, len(verrs))
	for _, verr := range verrs {
		fields = append(fields, strings.ToLower(verr.Field()))
	}
	return errors.Errorf("invalid field(s): %s", strings.Join(fields, ", "))
}
