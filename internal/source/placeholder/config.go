// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package placeholder

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrInvalidEnvVariable reports malformed environment variable values.
	ErrInvalidEnvVariable = errors.New("invalid environment value")
)

// config holds the environment-driven API settings.
type config struct {
	Endpoint string        `env:"TODO_API_ENDPOINT" envDefault:"https://jsonplaceholder.typicode.com"`
	Timeout  time.Duration `env:"TODO_API_TIMEOUT" envDefault:"30s"`
}

func loadConfigFromEnv() (*config, error) {
	config, err := env.ParseAs[config]()
	if err != nil {
		var aggregateErr env.AggregateError
		if errors.As(err, &aggregateErr) {
			err = aggregateErr.Errors[0]
		}
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *config) validate() error {
	errorsList := make([]string, 0)

	endpoint, err := url.Parse(c.Endpoint)
	switch {
	case err != nil:
		errorsList = append(errorsList, "TODO_API_ENDPOINT is not a valid URL: "+err.Error())
	case endpoint.Scheme != "http" && endpoint.Scheme != "https", endpoint.Host == "":
		errorsList = append(errorsList, "TODO_API_ENDPOINT must be an absolute http or https URL")
	}

	if c.Timeout <= 0 {
		errorsList = append(errorsList, "TODO_API_TIMEOUT must be greater than zero")
	}

	if len(errorsList) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidEnvVariable, strings.Join(errorsList, "; "))
	}

	c.Endpoint = strings.TrimSuffix(c.Endpoint, "/")
	return nil
}
