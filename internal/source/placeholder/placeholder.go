// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/mia-platform/todo-exporter/internal/info"
	"github.com/mia-platform/todo-exporter/internal/logger"
	"github.com/mia-platform/todo-exporter/internal/source"
)

const (
	loggerName = "todo-exporter:source:placeholder"

	usersPath = "/users"
	userPath  = "/users/{id}"
	todosPath = "/todos"

	userIDQueryParam = "userId"
)

var (
	// ErrPlaceholderSource wraps errors emitted while building the source.
	ErrPlaceholderSource = errors.New("placeholder source")
)

var _ source.Fetcher = &Source{}

// Source reads users and todos from the configured API endpoint.
type Source struct {
	client *resty.Client
}

// NewSource returns a Source configured from the environment.
func NewSource() (*Source, error) {
	config, err := loadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlaceholderSource, err)
	}

	return newSource(config, nil), nil
}

// newSource builds the resty client; a nil transport keeps the default one.
func newSource(config *config, transport http.RoundTripper) *Source {
	client := resty.New().
		SetBaseURL(config.Endpoint).
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", info.UserAgent()).
		SetHeader("Accept", "application/json")

	if transport != nil {
		client.SetTransport(transport)
	}

	return &Source{client: client}
}

// FetchPerson implements source.Fetcher.
func (s *Source) FetchPerson(ctx context.Context, id int) (*source.Person, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d must be greater than zero", source.ErrInvalidArgument, id)
	}

	request := s.client.R().SetPathParam("id", strconv.Itoa(id))
	body, err := s.get(ctx, request, userPath)
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: id %d: %s", source.ErrSubjectNotFound, id, statusErr)
		}
		return nil, err
	}

	var payload userPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: user %d: %s", source.ErrMalformedRecord, id, err)
	}

	person, err := payload.toPerson()
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// FetchAllPersons implements source.Fetcher.
func (s *Source) FetchAllPersons(ctx context.Context) ([]source.Person, error) {
	body, err := s.get(ctx, s.client.R(), usersPath)
	if err != nil {
		return nil, err
	}

	var payloads []userPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: users: %s", source.ErrMalformedRecord, err)
	}

	persons := make([]source.Person, 0, len(payloads))
	for _, payload := range payloads {
		person, err := payload.toPerson()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}

	return persons, nil
}

// FetchTasks implements source.Fetcher.
func (s *Source) FetchTasks(ctx context.Context, filter source.TaskFilter) ([]source.Task, error) {
	request := s.client.R()
	if !filter.All() {
		request.SetQueryParam(userIDQueryParam, strconv.Itoa(filter.OwnerID))
	}

	body, err := s.get(ctx, request, todosPath)
	if err != nil {
		return nil, err
	}

	var payloads []todoPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: todos: %s", source.ErrMalformedRecord, err)
	}

	tasks := make([]source.Task, 0, len(payloads))
	for _, payload := range payloads {
		task, err := payload.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// statusError reports a response outside the 2xx range.
type statusError struct {
	path       string
	statusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.path, e.statusCode)
}

// get issues the request and returns the raw body of a successful response.
// Transport failures and non success statuses are both wrapped in source.ErrFetchFailed.
func (s *Source) get(ctx context.Context, request *resty.Request, path string) ([]byte, error) {
	log := logger.FromContext(ctx).WithName(loggerName)

	log.Debug("sending request", "path", path, "pathParams", request.PathParams, "query", request.QueryParam.Encode())
	response, err := request.SetContext(ctx).Get(path)
	if err != nil {
		log.Debug("request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", source.ErrFetchFailed, err)
	}

	log.Trace("response received", "path", path, "statusCode", response.StatusCode(), "size", len(response.Body()), "duration", response.Time().String())
	if !response.IsSuccess() {
		return nil, fmt.Errorf("%w: %w", source.ErrFetchFailed, &statusError{
			path:       path,
			statusCode: response.StatusCode(),
		})
	}

	return response.Body(), nil
}
