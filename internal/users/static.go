package users

import "context"

// StaticClient is a stub client returning a fixed name or error. Useful for
// tests and local development without a running user service.
type StaticClient struct {
	Name string
	Err  error
}

// DisplayName returns the configured name or error.
func (s StaticClient) DisplayName(_ context.Context, _ string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Name, nil
}
