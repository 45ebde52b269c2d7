package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPortfolioRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Portfolio
	nextID  int
	failErr error // if set, every call returns this error

	// enterFind/releaseFind, when non-nil, form a handshake that parks a
	// FindByID call inside the repository until the test releases it.
	enterFind   chan string
	releaseFind chan struct{}
}

func newStubPortfolioRepo() *stubPortfolioRepo {
	return &stubPortfolioRepo{byID: make(map[string]*domain.Portfolio)}
}

func (r *stubPortfolioRepo) seed(p *domain.Portfolio) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p.Clone()
}

func (r *stubPortfolioRepo) List(_ context.Context, userID string) ([]*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*domain.Portfolio
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *stubPortfolioRepo) FindByID(_ context.Context, id string) (*domain.Portfolio, error) {
	enter, release := r.enterFind, r.releaseFind
	if enter != nil {
		enter <- id
		<-release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPortfolioNotFound
	}
	return p.Clone(), nil
}

func (r *stubPortfolioRepo) FindBySlug(_ context.Context, slug string) (*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPortfolioNotFound
}

func (r *stubPortfolioRepo) Create(_ context.Context, draft ports.PortfolioDraft) (*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextID++
	now := time.Now().UTC()
	p := &domain.Portfolio{
		ID:        fmt.Sprintf("portfolio-%d", r.nextID),
		UserID:    draft.UserID,
		Title:     draft.Title,
		Summary:   draft.Summary,
		Slug:      draft.Slug,
		IsPublic:  draft.IsPublic,
		Theme:     draft.Theme,
		Sections:  append([]domain.PortfolioSection{}, draft.Sections...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byID[p.ID] = p.Clone()
	return p, nil
}

func (r *stubPortfolioRepo) Update(_ context.Context, id string, upd domain.PortfolioUpdate) (*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPortfolioNotFound
	}
	p.Apply(upd)
	return p.Clone(), nil
}

func (r *stubPortfolioRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPortfolioNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func loadedState(t *testing.T, sectionIDs ...string) (*PortfolioState, *stubPortfolioRepo) {
	t.Helper()
	repo := newStubPortfolioRepo()
	p := &domain.Portfolio{ID: "portfolio-1", UserID: "u1", Title: "T", Slug: "t", Theme: domain.DefaultTheme}
	for i, id := range sectionIDs {
		p.Sections = append(p.Sections, domain.PortfolioSection{
			ID: id, PortfolioID: p.ID, Type: domain.SectionAbout, Title: id, Order: i + 1,
		})
	}
	repo.seed(p)

	s := NewPortfolioState(repo, discardLogger)
	s.FetchPortfolioByID(context.Background(), "portfolio-1")
	if s.Current() == nil {
		t.Fatal("fixture portfolio did not load")
	}
	return s, repo
}

// ---------------------------------------------------------------------------
// Fetch / persist operations
// ---------------------------------------------------------------------------

func TestFetchUserPortfolios_PopulatesList(t *testing.T) {
	repo := newStubPortfolioRepo()
	repo.seed(&domain.Portfolio{ID: "p1", UserID: "u1", Slug: "one"})
	repo.seed(&domain.Portfolio{ID: "p2", UserID: "other", Slug: "two"})
	s := NewPortfolioState(repo, discardLogger)

	s.FetchUserPortfolios(context.Background(), "u1")

	snap := s.Snapshot()
	if snap.IsLoading {
		t.Error("expected loading to be cleared")
	}
	if snap.Err != "" {
		t.Errorf("unexpected error: %s", snap.Err)
	}
	if len(snap.Portfolios) != 1 || snap.Portfolios[0].ID != "p1" {
		t.Fatalf("unexpected list: %+v", snap.Portfolios)
	}
}

func TestFetchUserPortfolios_CapturesError(t *testing.T) {
	repo := newStubPortfolioRepo()
	repo.failErr = errors.New("boom")
	s := NewPortfolioState(repo, discardLogger)

	s.FetchUserPortfolios(context.Background(), "u1")

	snap := s.Snapshot()
	if snap.Err != "boom" {
		t.Errorf("expected error message passed through, got %q", snap.Err)
	}
	if snap.IsLoading {
		t.Error("expected loading to be cleared on failure")
	}
}

func TestCreatePortfolio_AppendsAndAdoptsAsCurrent(t *testing.T) {
	repo := newStubPortfolioRepo()
	s := NewPortfolioState(repo, discardLogger)

	created, err := s.CreatePortfolio(context.Background(), ports.PortfolioDraft{
		UserID: "u1", Title: "T", Slug: "t",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Portfolios) != 1 {
		t.Fatalf("expected exactly one portfolio, got %d", len(snap.Portfolios))
	}
	got := snap.Portfolios[0]
	if got.Title != "T" || got.Slug != "t" {
		t.Errorf("unexpected portfolio: %+v", got)
	}
	if len(got.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(got.Sections))
	}
	if snap.Current == nil || snap.Current.ID != created.ID {
		t.Error("created portfolio was not adopted as current")
	}
}

func TestCreatePortfolio_ErrorPropagatesAndIsRecorded(t *testing.T) {
	repo := newStubPortfolioRepo()
	repo.failErr = errors.New("create failed")
	s := NewPortfolioState(repo, discardLogger)

	created, err := s.CreatePortfolio(context.Background(), ports.PortfolioDraft{UserID: "u1"})
	if err == nil {
		t.Fatal("expected error to propagate to caller")
	}
	if created != nil {
		t.Error("expected nil portfolio on failure")
	}

	snap := s.Snapshot()
	if snap.Err != "create failed" {
		t.Errorf("expected error recorded, got %q", snap.Err)
	}
	if len(snap.Portfolios) != 0 || snap.Current != nil {
		t.Error("failed create must not mutate list or current")
	}
}

func TestUpdatePortfolio_ReplacesListEntryAndCurrent(t *testing.T) {
	s, _ := loadedState(t, "a")
	s.FetchUserPortfolios(context.Background(), "u1")
	title := "Renamed"

	s.UpdatePortfolio(context.Background(), "portfolio-1", domain.PortfolioUpdate{Title: &title})

	snap := s.Snapshot()
	if snap.Err != "" {
		t.Fatalf("unexpected error: %s", snap.Err)
	}
	if snap.Current == nil || snap.Current.Title != "Renamed" {
		t.Error("current not replaced by merged result")
	}
	if len(snap.Portfolios) != 1 || snap.Portfolios[0].Title != "Renamed" {
		t.Error("list entry not replaced by merged result")
	}
}

func TestDeletePortfolio_ClearsCurrentWhenOpen(t *testing.T) {
	s, _ := loadedState(t)
	s.FetchUserPortfolios(context.Background(), "u1")

	s.DeletePortfolio(context.Background(), "portfolio-1")

	snap := s.Snapshot()
	if snap.Err != "" {
		t.Fatalf("unexpected error: %s", snap.Err)
	}
	if len(snap.Portfolios) != 0 {
		t.Error("deleted portfolio still listed")
	}
	if snap.Current != nil {
		t.Error("current slot not cleared after deleting the open portfolio")
	}
}

func TestStaleFetchCompletionIsDropped(t *testing.T) {
	repo := newStubPortfolioRepo()
	repo.seed(&domain.Portfolio{ID: "slow", UserID: "u1", Slug: "slow", Title: "Slow"})
	repo.seed(&domain.Portfolio{ID: "fast", UserID: "u1", Slug: "fast", Title: "Fast"})
	s := NewPortfolioState(repo, discardLogger)

	entered := make(chan string, 1)
	release := make(chan struct{})
	repo.enterFind = entered
	repo.releaseFind = release

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchPortfolioByID(context.Background(), "slow")
	}()

	<-entered // the slow fetch is parked inside the repository
	repo.enterFind = nil
	repo.releaseFind = nil

	// A newer fetch completes while the older one is still in flight, then
	// the older completion arrives late and must be dropped.
	s.FetchPortfolioByID(context.Background(), "fast")
	close(release)
	wg.Wait()

	cur := s.Current()
	if cur == nil || cur.ID != "fast" {
		t.Fatalf("stale completion overwrote newer fetch: %+v", cur)
	}
}

// ---------------------------------------------------------------------------
// Local section-editing operations
// ---------------------------------------------------------------------------

func TestAddSection_SequentialOrdersAreGapless(t *testing.T) {
	s, _ := loadedState(t)

	for i := 0; i < 5; i++ {
		s.AddSection(domain.SectionInput{Type: domain.SectionSkills})
	}

	cur := s.Current()
	if len(cur.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(cur.Sections))
	}
	for i, sec := range cur.Sections {
		if sec.Order != i+1 {
			t.Errorf("section %d: expected order %d, got %d", i, i+1, sec.Order)
		}
	}
}

func TestRemoveSection_RenumbersRemaining(t *testing.T) {
	s, _ := loadedState(t, "a", "b", "c")

	s.RemoveSection("b")

	cur := s.Current()
	if len(cur.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(cur.Sections))
	}
	if cur.Sections[0].ID != "a" || cur.Sections[0].Order != 1 {
		t.Errorf("unexpected first section: %+v", cur.Sections[0])
	}
	if cur.Sections[1].ID != "c" || cur.Sections[1].Order != 2 {
		t.Errorf("unexpected second section: %+v", cur.Sections[1])
	}
}

func TestReorderSections_MatchesGivenSequence(t *testing.T) {
	s, _ := loadedState(t, "A", "B", "C")

	s.ReorderSections([]string{"C", "A", "B"})

	cur := s.Current()
	want := []string{"C", "A", "B"}
	for i, id := range want {
		if cur.Sections[i].ID != id || cur.Sections[i].Order != i+1 {
			t.Errorf("position %d: expected %s/%d, got %s/%d",
				i, id, i+1, cur.Sections[i].ID, cur.Sections[i].Order)
		}
	}
}

func TestUpdateSection_TouchesOnlyMatchingSection(t *testing.T) {
	s, _ := loadedState(t, "a", "b")
	title := "X"

	s.UpdateSection("a", domain.SectionUpdate{Title: &title})

	cur := s.Current()
	if cur.Sections[0].Title != "X" {
		t.Errorf("matching section not updated: %q", cur.Sections[0].Title)
	}
	if cur.Sections[1].Title != "b" {
		t.Errorf("non-matching section modified: %q", cur.Sections[1].Title)
	}
}

func TestSectionOps_NoOpWithoutCurrentPortfolio(t *testing.T) {
	s := NewPortfolioState(newStubPortfolioRepo(), discardLogger)

	s.AddSection(domain.SectionInput{Type: domain.SectionAbout})
	s.RemoveSection("x")
	s.ReorderSections([]string{"x"})
	title := "X"
	s.UpdateSection("x", domain.SectionUpdate{Title: &title})

	snap := s.Snapshot()
	if snap.Current != nil {
		t.Error("section op materialized a portfolio out of nothing")
	}
	if snap.Err != "" {
		t.Errorf("section ops must never record errors, got %q", snap.Err)
	}
}

func TestSnapshot_IsIsolatedFromContainer(t *testing.T) {
	s, _ := loadedState(t, "a")

	snap := s.Snapshot()
	snap.Current.Sections[0].Title = "mutated"
	snap.Portfolios[0].Title = "mutated"

	cur := s.Current()
	if cur.Sections[0].Title == "mutated" {
		t.Error("snapshot shares section storage with the container")
	}
}
