// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/github-repo-search/internal/domain"
	"github.com/naka-gawa/github-repo-search/internal/gateway"
)

// FormState is the submission state of the search form.
type FormState int

const (
	StateIdle FormState = iota
	StateSubmitting
)

func (s FormState) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// FormController owns the search criteria, the submitting flag and the
// result list. It is driven from a single goroutine (the event loop or a
// command's Run); only Fetch may be called from elsewhere.
type FormController struct {
	searcher gateway.RepositorySearcher
	builder  gateway.QueryBuilder
	logger   *logrus.Logger

	criteria domain.SearchCriteria
	state    FormState
	records  []domain.RepositoryRecord
	lastErr  error
}

// NewFormController creates a FormController with freshly mounted criteria.
func NewFormController(searcher gateway.RepositorySearcher, builder gateway.QueryBuilder, logger *logrus.Logger) *FormController {
	return &FormController{
		searcher: searcher,
		builder:  builder,
		logger:   logger,
		criteria: domain.NewSearchCriteria(),
	}
}

func (c *FormController) Criteria() domain.SearchCriteria { return c.criteria }
func (c *FormController) State() FormState                { return c.state }
func (c *FormController) Err() error                      { return c.lastErr }

// Records returns the result list of the most recently completed search.
func (c *FormController) Records() []domain.RepositoryRecord { return c.records }

func (c *FormController) SetQuery(q string) {
	c.criteria.Query = q
}

func (c *FormController) SetSort(s string) error {
	sort, err := domain.ParseSort(s)
	if err != nil {
		return err
	}
	c.criteria.Sort = sort
	return nil
}

func (c *FormController) SetOrder(o string) error {
	order, err := domain.ParseOrder(o)
	if err != nil {
		return err
	}
	c.criteria.Order = order
	return nil
}

// Disabled reports whether submission is currently blocked: a search is in
// flight or the keyword field is empty.
func (c *FormController) Disabled() bool {
	return c.state == StateSubmitting || !c.criteria.HasQuery()
}

// Begin is the validation gate. When submission is allowed it moves the form
// to StateSubmitting and returns the URL to fetch; otherwise it changes
// nothing and returns false.
func (c *FormController) Begin() (string, bool) {
	if c.Disabled() {
		c.logger.WithField("state", c.state).Debug("Submit ignored.")
		return "", false
	}
	c.state = StateSubmitting
	url := c.builder.Build(c.criteria)
	c.logger.WithField("url", url).Debug("Submitting search...")
	return url, true
}

// Fetch runs the search for url. It touches no controller state.
func (c *FormController) Fetch(ctx context.Context, url string) ([]domain.RepositoryRecord, error) {
	return c.searcher.SearchRepositories(ctx, url)
}

// Resolve completes a submission, replacing the result list.
func (c *FormController) Resolve(records []domain.RepositoryRecord) {
	c.state = StateIdle
	c.records = records
	c.lastErr = nil
	c.logger.WithField("count", len(records)).Debug("Search completed.")
}

// Reject completes a failed submission. The previous result list stays.
func (c *FormController) Reject(err error) {
	c.state = StateIdle
	c.lastErr = err
	c.logger.WithError(err).Warn("Search failed.")
}

// Submit runs a whole submission synchronously. An empty query is a silent
// no-op: no request is made and nil is returned. The submitting flag is
// cleared whatever the outcome.
func (c *FormController) Submit(ctx context.Context) error {
	url, ok := c.Begin()
	if !ok {
		return nil
	}
	records, err := c.Fetch(ctx, url)
	if err != nil {
		c.Reject(err)
		return err
	}
	c.Resolve(records)
	return nil
}
