package domain

import (
	"testing"
	"time"
)

func testPortfolio(sectionIDs ...string) *Portfolio {
	p := &Portfolio{
		ID:        "portfolio-1",
		UserID:    "user-1",
		Title:     "Test",
		Slug:      "test",
		Theme:     DefaultTheme,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}
	for i, id := range sectionIDs {
		p.Sections = append(p.Sections, PortfolioSection{
			ID:          id,
			PortfolioID: p.ID,
			Type:        SectionAbout,
			Title:       "Section " + id,
			Order:       i + 1,
			Content:     DefaultContent(SectionAbout),
		})
	}
	return p
}

func assertDenseOrder(t *testing.T, sections []PortfolioSection) {
	t.Helper()
	for i, s := range sections {
		if s.Order != i+1 {
			t.Fatalf("section %d (%s): expected order %d, got %d", i, s.ID, i+1, s.Order)
		}
	}
}

func TestAddSection_DefaultsAndDenseOrder(t *testing.T) {
	p := testPortfolio()

	for i := 0; i < 4; i++ {
		p.AddSection(SectionInput{Type: SectionSkills})
	}

	if len(p.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(p.Sections))
	}
	assertDenseOrder(t, p.Sections)

	s := p.Sections[0]
	if s.Title != "New Section" {
		t.Errorf("expected default title, got %q", s.Title)
	}
	if s.ID == "" {
		t.Error("expected a fresh section id")
	}
	if s.PortfolioID != p.ID {
		t.Errorf("expected portfolio id %q, got %q", p.ID, s.PortfolioID)
	}
	if s.Content.Skills == nil {
		t.Error("expected skills content variant to be populated")
	}
}

func TestAddSection_ExplicitValuesKept(t *testing.T) {
	p := testPortfolio("a")

	content := SectionContent{About: &AboutContent{Text: "hello"}}
	added := p.AddSection(SectionInput{Type: SectionAbout, Title: "Intro", Order: 7, Content: &content})

	if added.Title != "Intro" || added.Order != 7 {
		t.Fatalf("explicit fields not kept: %+v", added)
	}
	if added.Content.About == nil || added.Content.About.Text != "hello" {
		t.Fatalf("explicit content not kept: %+v", added.Content)
	}
}

func TestAddSection_StampsUpdatedAt(t *testing.T) {
	p := testPortfolio()
	before := p.UpdatedAt

	p.AddSection(SectionInput{Type: SectionAbout})

	if !p.UpdatedAt.After(before) {
		t.Errorf("expected UpdatedAt to advance, got %v", p.UpdatedAt)
	}
}

func TestUpdateSection_ShallowMergeLeavesRestUntouched(t *testing.T) {
	p := testPortfolio("a", "b", "c")
	p.Sections[1].Content = SectionContent{About: &AboutContent{Text: "keep me"}}
	title := "X"

	if !p.UpdateSection("b", SectionUpdate{Title: &title}) {
		t.Fatal("expected section b to match")
	}

	if p.Sections[1].Title != "X" {
		t.Errorf("title not updated: %q", p.Sections[1].Title)
	}
	if p.Sections[1].Order != 2 {
		t.Errorf("order changed unexpectedly: %d", p.Sections[1].Order)
	}
	if p.Sections[1].Content.About == nil || p.Sections[1].Content.About.Text != "keep me" {
		t.Errorf("content changed unexpectedly: %+v", p.Sections[1].Content)
	}
	if p.Sections[0].Title != "Section a" || p.Sections[2].Title != "Section c" {
		t.Error("other sections were modified")
	}
}

func TestUpdateSection_UnknownIDIsReported(t *testing.T) {
	p := testPortfolio("a")
	title := "X"

	if p.UpdateSection("ghost", SectionUpdate{Title: &title}) {
		t.Fatal("expected no match for unknown id")
	}
	if p.Sections[0].Title != "Section a" {
		t.Error("section modified despite unknown id")
	}
}

func TestRemoveSection_RenumbersDense(t *testing.T) {
	p := testPortfolio("a", "b", "c", "d")

	if !p.RemoveSection("b") {
		t.Fatal("expected section b to be removed")
	}

	if len(p.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(p.Sections))
	}
	assertDenseOrder(t, p.Sections)

	want := []string{"a", "c", "d"}
	for i, id := range want {
		if p.Sections[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, p.Sections[i].ID)
		}
	}
}

func TestReorderSections_FullPermutation(t *testing.T) {
	p := testPortfolio("A", "B", "C")

	p.ReorderSections([]string{"C", "A", "B"})

	want := []string{"C", "A", "B"}
	if len(p.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(p.Sections))
	}
	for i, id := range want {
		if p.Sections[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, p.Sections[i].ID)
		}
	}
	assertDenseOrder(t, p.Sections)
}

func TestReorderSections_UnknownIDDropped(t *testing.T) {
	p := testPortfolio("a", "b")

	p.ReorderSections([]string{"b", "ghost", "a"})

	if len(p.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(p.Sections))
	}
	if p.Sections[0].ID != "b" || p.Sections[1].ID != "a" {
		t.Fatalf("unexpected sequence: %s, %s", p.Sections[0].ID, p.Sections[1].ID)
	}
	assertDenseOrder(t, p.Sections)
}

func TestReorderSections_MissingIDDropsSection(t *testing.T) {
	p := testPortfolio("a", "b", "c")

	// "b" is left out of the ordering: it is dropped from the result.
	p.ReorderSections([]string{"c", "a"})

	if len(p.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(p.Sections))
	}
	if p.Sections[0].ID != "c" || p.Sections[1].ID != "a" {
		t.Fatalf("unexpected sequence: %s, %s", p.Sections[0].ID, p.Sections[1].ID)
	}
	assertDenseOrder(t, p.Sections)
}

func TestApply_MergesOnlyProvidedFields(t *testing.T) {
	p := testPortfolio("a")
	title := "New Title"
	isPublic := true

	p.Apply(PortfolioUpdate{Title: &title, IsPublic: &isPublic})

	if p.Title != "New Title" {
		t.Errorf("title not merged: %q", p.Title)
	}
	if !p.IsPublic {
		t.Error("is_public not merged")
	}
	if p.Slug != "test" || p.Theme != DefaultTheme {
		t.Error("unrelated fields changed")
	}
	if len(p.Sections) != 1 {
		t.Error("sections changed without an update")
	}
}

func TestClone_IsolatesSections(t *testing.T) {
	p := testPortfolio("a", "b")
	clone := p.Clone()

	clone.Sections[0].Title = "mutated"

	if p.Sections[0].Title == "mutated" {
		t.Fatal("clone shares section backing array with original")
	}
}

func TestClone_IsolatesSectionContent(t *testing.T) {
	p := testPortfolio()
	p.Sections = []PortfolioSection{
		{
			ID:    "exp",
			Type:  SectionExperience,
			Order: 1,
			Content: SectionContent{Experience: []ExperienceItem{
				{ID: "e1", Company: "Initech", Position: "Engineer"},
			}},
		},
		{
			ID:    "proj",
			Type:  SectionProjects,
			Order: 2,
			Content: SectionContent{Projects: []Project{
				{ID: "p1", Title: "Widget", Technologies: []string{"Go"}},
			}},
		},
		{
			ID:    "about",
			Type:  SectionAbout,
			Order: 3,
			Content: SectionContent{About: &AboutContent{Text: "hello"}},
		},
	}

	clone := p.Clone()
	clone.Sections[0].Content.Experience[0].Company = "mutated"
	clone.Sections[1].Content.Projects[0].Technologies[0] = "mutated"
	clone.Sections[2].Content.About.Text = "mutated"

	if p.Sections[0].Content.Experience[0].Company != "Initech" {
		t.Fatal("experience items shared between clone and original")
	}
	if p.Sections[1].Content.Projects[0].Technologies[0] != "Go" {
		t.Fatal("project technologies shared between clone and original")
	}
	if p.Sections[2].Content.About.Text != "hello" {
		t.Fatal("about content shared between clone and original")
	}
}

func TestSectionTypeValid(t *testing.T) {
	for _, st := range SectionTypes {
		if !st.Valid() {
			t.Errorf("%s should be valid", st)
		}
	}
	if SectionType("banner").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestDefaultContent_PopulatesMatchingVariant(t *testing.T) {
	if DefaultContent(SectionAbout).About == nil {
		t.Error("about variant missing")
	}
	if DefaultContent(SectionExperience).Experience == nil {
		t.Error("experience variant missing")
	}
	if DefaultContent(SectionContact).Contact == nil {
		t.Error("contact variant missing")
	}
}
