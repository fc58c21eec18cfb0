package ejournal

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"ejassist-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/ejournal")

const (
	loginPath  = "/date/login"
	recordPath = "/date/elev"
)

// StatusError is returned when the portal answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("portal returned %s", e.Status)
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		return nil, fmt.Errorf("empty portal base url")
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/ejournal/http")

	return &Client{http: client}, nil
}

// Login submits the student identifier to the portal, establishing the
// session cookie the record request depends on. Any non-error status
// counts as success.
func (c *Client) Login(ctx context.Context, idnp string) error {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"idnp": idnp,
		}).
		Post(loginPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login request failed")
		return err
	}
	if res.IsError() {
		err := &StatusError{Code: res.StatusCode(), Status: res.Status()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "login rejected")
		return err
	}

	return nil
}

// FetchRecords logs in and retrieves the raw HTML of the student's
// e-journal record. Retry policy belongs to the caller.
func (c *Client) FetchRecords(ctx context.Context, idnp string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchRecords")
	defer span.End()

	err := c.Login(ctx, idnp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s", recordPath, idnp))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "record request failed")
		return "", err
	}
	if res.IsError() {
		err := &StatusError{Code: res.StatusCode(), Status: res.Status()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "record request rejected")
		return "", err
	}

	return res.String(), nil
}
