package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-repo-search/internal/view"
)

// Page is the root view: the search form, the greeting slot and the result list.
type Page struct {
	form    *FormController
	profile *ProfileSlot
	logger  *logrus.Logger
}

// NewPage creates a new Page instance.
func NewPage(form *FormController, profile *ProfileSlot, logger *logrus.Logger) *Page {
	return &Page{
		form:    form,
		profile: profile,
		logger:  logger,
	}
}

func (p *Page) Form() *FormController { return p.form }
func (p *Page) Profile() *ProfileSlot { return p.profile }

// Render projects the current state onto the render tree.
func (p *Page) Render() view.Page {
	return view.Render(view.State{
		Criteria:   p.form.Criteria(),
		Submitting: p.form.State() == StateSubmitting,
		Disabled:   p.form.Disabled(),
		Records:    p.form.Records(),
		Profile:    p.profile.Profile(),
		Err:        p.form.Err(),
	})
}

// Run mounts the page and submits the current criteria in one go.
// The profile load and the search are independent, so they run concurrently;
// only the search error is returned.
func (p *Page) Run(ctx context.Context) (view.Page, error) {
	p.logger.Debug("Usecase: Mounting page...")

	var eg errgroup.Group

	eg.Go(func() error {
		p.profile.Load(ctx)
		return nil
	})

	eg.Go(func() error {
		return p.form.Submit(ctx)
	})

	err := eg.Wait()
	p.logger.Debug("Usecase: Page settled.")
	return p.Render(), err
}
