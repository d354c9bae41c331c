package kontent

import "context"

// Credentials select the environment and key a request runs against.
type Credentials struct {
	EnvironmentID string
	APIKey        string
}

type credentialsKey struct{}

// WithCredentials returns a context carrying per-request credentials.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

// CredentialsFrom returns the credentials stored in ctx, if any.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok
}

// Factory builds clients from base options, letting credentials carried in
// the context override the configured ones.
type Factory struct {
	base Options
}

func NewFactory(base Options) *Factory {
	return &Factory{base: base}
}

// Client returns a client for the call in ctx.
func (f *Factory) Client(ctx context.Context) (Doer, error) {
	opts := f.base
	if c, ok := CredentialsFrom(ctx); ok {
		if c.EnvironmentID != "" {
			opts.EnvironmentID = c.EnvironmentID
		}
		if c.APIKey != "" {
			opts.APIKey = c.APIKey
		}
	}
	return NewClient(opts)
}
