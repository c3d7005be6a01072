package app

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"paisa.dev/kharcha/pkg/api"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/session"
)

// Service provides high-level operations over the session manager and the
// API client so the CLI runners and the UI share one code path.
type Service struct {
	Session *session.Manager
	API     *api.Client
}

// Load wires a Service from config: store, manager bootstrapped from it,
// and an API client that reads the manager's token.
func Load(cfg session.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = session.LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	st, err := session.Load(cfg)
	if err != nil {
		return nil, err
	}
	m := session.NewManager(st)
	return &Service{Session: m, API: api.New(cfg.APIURL(), m)}, nil
}

// Login runs the authentication exchange and, only on success, persists
// the resulting identity and token.
func (s *Service) Login(ctx context.Context, mobile, password string) (session.Identity, error) {
	if s.API == nil {
		return session.Identity{}, errors.New("app: no api client configured")
	}
	resp, err := s.API.Login(ctx, mobile, password)
	if err != nil {
		return session.Identity{}, err
	}
	id := session.Identity{ID: resp.ID, Name: resp.Name, Mobile: resp.Mobile}
	if err := s.Session.Login(id, resp.Token); err != nil {
		return session.Identity{}, err
	}
	return id, nil
}

// Register creates an account; it does not log in.
func (s *Service) Register(ctx context.Context, name, mobile, password string) error {
	return s.API.Register(ctx, name, mobile, password)
}

// Logout clears the session.
func (s *Service) Logout() error {
	return s.Session.Logout()
}

// AddExpense validates the draft locally and submits it. Validation
// failures return before any network call.
func (s *Service) AddExpense(ctx context.Context, d expense.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return s.API.AddExpense(ctx, d)
}

// Expenses fetches the expense sequence for a period.
func (s *Service) Expenses(ctx context.Context, p expense.Period) ([]expense.Expense, error) {
	return s.API.Expenses(ctx, p)
}

// Report fetches the aggregation for a period.
func (s *Service) Report(ctx context.Context, p expense.Period) (*expense.Report, error) {
	return s.API.Report(ctx, p)
}

// ExpensesWithReport fetches the list and the report concurrently.
func (s *Service) ExpensesWithReport(ctx context.Context, p expense.Period) ([]expense.Expense, *expense.Report, error) {
	var (
		all []expense.Expense
		r   *expense.Report
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.API.Expenses(ctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		r, err = s.API.Report(ctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return all, r, nil
}
