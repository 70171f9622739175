package helpers

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"terraform-provider-vestacp/internal/clientmodels"
	"terraform-provider-vestacp/internal/constants"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

type HttpCallerVerb string

const (
	HttpCallerVerbGet    HttpCallerVerb = "GET"
	HttpCallerVerbPost   HttpCallerVerb = "POST"
	HttpCallerVerbPut    HttpCallerVerb = "PUT"
	HttpCallerVerbDelete HttpCallerVerb = "DELETE"
)

func (v HttpCallerVerb) String() string {
	return string(v)
}

func (v HttpCallerVerb) HasBody() bool {
	return v == HttpCallerVerbPost || v == HttpCallerVerbPut
}

// HostVerification controls whether the certificate presented by an https
// endpoint must match the endpoint host name. The certificate chain itself is
// never validated because panels ship with self-signed certificates.
type HostVerification string

const (
	HostVerificationNone   HostVerification = "none"
	HostVerificationStrict HostVerification = "strict"
)

type HttpCaller struct {
	ctx              context.Context
	hostVerification HostVerification
	timeout          time.Duration
}

type HttpCallerResponse struct {
	StatusCode int
	Body       []byte
}

func NewHttpCaller(ctx context.Context, hostVerification HostVerification, timeout time.Duration) *HttpCaller {
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	if hostVerification == "" {
		hostVerification = HostVerificationStrict
	}

	return &HttpCaller{
		ctx:              ctx,
		hostVerification: hostVerification,
		timeout:          timeout,
	}
}

func (c *HttpCaller) PostFormToClient(url string, form url.Values) (*HttpCallerResponse, error) {
	return c.RequestFormToClient(HttpCallerVerbPost, url, form)
}

func (c *HttpCaller) GetFormFromClient(url string, form url.Values) (*HttpCallerResponse, error) {
	return c.RequestFormToClient(HttpCallerVerbGet, url, form)
}

func (c *HttpCaller) DeleteFormFromClient(url string, form url.Values) (*HttpCallerResponse, error) {
	return c.RequestFormToClient(HttpCallerVerbDelete, url, form)
}

// RequestFormToClient sends form as an url encoded body for verbs that carry
// one, and as the query string otherwise. The body of the answer is returned
// untouched.
func (c *HttpCaller) RequestFormToClient(verb HttpCallerVerb, rawUrl string, form url.Values) (*HttpCallerResponse, error) {
	clientResponse := HttpCallerResponse{}

	if rawUrl == "" {
		return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.New("url cannot be empty"))
	}

	targetUrl, err := url.Parse(rawUrl)
	if err != nil {
		return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConfiguration, "", errors.Wrap(err, "invalid url"))
	}

	if !IsSupportedScheme(targetUrl.Scheme) {
		return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureUnsupportedTransport, "", fmt.Errorf("scheme %q is not supported", targetUrl.Scheme))
	}

	tflog.Info(c.ctx, fmt.Sprintf("%v command to %s", verb, targetUrl.Redacted()))

	client := &http.Client{
		Timeout: c.timeout,
	}
	if tlsConfig := TlsConfigForUrl(targetUrl, c.hostVerification); tlsConfig != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		client.Transport = transport
	}

	var req *http.Request
	if verb.HasBody() {
		req, err = http.NewRequestWithContext(c.ctx, verb.String(), targetUrl.String(), strings.NewReader(form.Encode()))
		if err != nil {
			return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrap(err, "error creating request"))
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		query := targetUrl.Query()
		for key, values := range form {
			query[key] = values
		}
		targetUrl.RawQuery = query.Encode()
		req, err = http.NewRequestWithContext(c.ctx, verb.String(), targetUrl.String(), nil)
		if err != nil {
			return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrap(err, "error creating request"))
		}
	}

	response, err := client.Do(req)
	if err != nil {
		tflog.Error(c.ctx, fmt.Sprintf("Can't connect with %s: %v", targetUrl.Host, err))
		return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrapf(err, "error on %s to %s", verb, targetUrl.Host))
	}
	defer response.Body.Close()

	clientResponse.StatusCode = response.StatusCode
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return &clientResponse, clientmodels.NewCommandError(clientmodels.FailureConnection, "", errors.Wrapf(err, "error reading response body from %s", targetUrl.Host))
	}
	clientResponse.Body = body

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		cmdErr := clientmodels.NewCommandError(clientmodels.FailureUnexpectedStatus, "", nil)
		cmdErr.StatusCode = response.StatusCode
		return &clientResponse, cmdErr
	}

	return &clientResponse, nil
}

// TlsConfigForUrl returns nil for plain http endpoints. For https endpoints
// peer chain validation is skipped and, at the strict level, the leaf
// certificate must still be valid for the url host.
func TlsConfigForUrl(targetUrl *url.URL, level HostVerification) *tls.Config {
	if targetUrl == nil || !IsSecureScheme(targetUrl.Scheme) {
		return nil
	}

	// #nosec G402 -- panels are installed with self-signed certificates
	config := &tls.Config{
		InsecureSkipVerify: true,
	}

	if level == HostVerificationStrict {
		host := targetUrl.Hostname()
		config.VerifyConnection = func(state tls.ConnectionState) error {
			if len(state.PeerCertificates) == 0 {
				return errors.New("server did not present a certificate")
			}
			return state.PeerCertificates[0].VerifyHostname(host)
		}
	}

	return config
}

func IsSecureScheme(scheme string) bool {
	return strings.EqualFold(scheme, "https")
}

func IsSupportedScheme(scheme string) bool {
	return IsSecureScheme(scheme) || strings.EqualFold(scheme, "http")
}
