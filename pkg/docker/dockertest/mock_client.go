// Package dockertest provides a scripted fake of the container runtime for
// orchestrator tests.
package dockertest

import (
	"context"
	"fmt"

	"github.com/devkit-build/devkit/pkg/docker/command"
)

// MockClient implements command.Client with canned answers and records every
// call in order.
type MockClient struct {
	// LocalImages and RemoteManifests list the tags the fake local store and
	// remote registry know about.
	LocalImages     map[string]bool
	RemoteManifests map[string]bool

	PullError  error
	BuildError error
	PushError  error

	// Calls records each invocation as "<op> <tag>".
	Calls []string
	// BuildCalls records the full options of every Build invocation.
	BuildCalls []command.BuildOptions
}

func NewMockClient() *MockClient {
	return &MockClient{
		LocalImages:     map[string]bool{},
		RemoteManifests: map[string]bool{},
	}
}

func (c *MockClient) ImageExists(ctx context.Context, tag string) (bool, error) {
	c.record("inspect", tag)
	return c.LocalImages[tag], nil
}

func (c *MockClient) ManifestExists(ctx context.Context, tag string) (bool, error) {
	c.record("manifest-inspect", tag)
	return c.RemoteManifests[tag], nil
}

func (c *MockClient) Pull(ctx context.Context, tag string) error {
	c.record("pull", tag)
	if c.PullError != nil {
		return c.PullError
	}
	c.LocalImages[tag] = true
	return nil
}

func (c *MockClient) Build(ctx context.Context, options command.BuildOptions) error {
	c.record("build", options.ImageName)
	c.BuildCalls = append(c.BuildCalls, options)
	if c.BuildError != nil {
		return c.BuildError
	}
	c.LocalImages[options.ImageName] = true
	return nil
}

func (c *MockClient) Push(ctx context.Context, tag string) error {
	c.record("push", tag)
	return c.PushError
}

// CallsFor returns the recorded calls for one operation, e.g. "pull".
func (c *MockClient) CallsFor(op string) []string {
	var calls []string
	prefix := op + " "
	for _, call := range c.Calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			calls = append(calls, call)
		}
	}
	return calls
}

func (c *MockClient) record(op, tag string) {
	c.Calls = append(c.Calls, fmt.Sprintf("%s %s", op, tag))
}
