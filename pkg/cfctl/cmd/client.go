package cmd

import (
	"errors"

	"github.com/telekom/cfctl/pkg/awx"
	"github.com/telekom/cfctl/pkg/awxcheck"
	"github.com/telekom/cfctl/pkg/version"
)

func buildClient(rt *runtimeState) (*awx.Client, error) {
	if err := rt.EnsureConfigLoaded(); err != nil {
		return nil, err
	}
	server := rt.resolveServer()
	if server == "" {
		return nil, errors.New("awx server is required")
	}
	timeout, err := rt.cfg.AWX.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	rt.Logger().Debugw("Building AWX client", "server", server, "username", rt.resolveUsername(), "timeout", timeout)

	return awx.New(
		awx.WithServer(server),
		awx.WithBasicAuth(rt.resolveUsername(), rt.cfg.AWX.Password()),
		awx.WithTimeout(timeout),
		awx.WithInsecureSkipTLSVerify(rt.cfg.AWX.InsecureSkipTLSVerify),
		awx.WithRateLimit(rt.cfg.AWX.RateLimit, 1),
		awx.WithUserAgent("cfctl/"+version.Version),
		awx.WithLogger(rt.Logger()),
	)
}

func buildChecker(rt *runtimeState) (*awxcheck.Checker, error) {
	client, err := buildClient(rt)
	if err != nil {
		return nil, err
	}
	return awxcheck.NewFromClient(client), nil
}
