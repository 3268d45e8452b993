package avwx

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Authenticator applies an AVWX API key to outgoing requests.
type Authenticator struct {
	key string
}

// NewAuthenticator returns an Authenticator for key.
func NewAuthenticator(key string) (*Authenticator, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	return &Authenticator{key: key}, nil
}

// Header returns the header name and value that authenticate a request.
func (a *Authenticator) Header() (string, string) {
	return "Authorization", a.key
}

// Apply is a resty request middleware that sets the Authorization header.
func (a *Authenticator) Apply(_ *resty.Client, r *resty.Request) error {
	name, value := a.Header()
	r.SetHeader(name, value)
	return nil
}
