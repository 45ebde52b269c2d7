package domain

import "slices"

// SectionType identifies the kind of content block a section carries.
type SectionType string

const (
	SectionAbout      SectionType = "about"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionProjects   SectionType = "projects"
	SectionContact    SectionType = "contact"
)

// SectionTypes lists every valid section type.
var SectionTypes = []SectionType{
	SectionAbout,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

// Valid reports whether t is a known section type.
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PortfolioSection is a single ordered content block within a portfolio.
// Order is 1-based and kept dense (1..N, no gaps) across removals and reorders.
type PortfolioSection struct {
	ID          string         `json:"id" bson:"id"`
	PortfolioID string         `json:"portfolio_id" bson:"portfolio_id"`
	Type        SectionType    `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	Order       int            `json:"order" bson:"order"`
	Content     SectionContent `json:"content" bson:"content"`
}

// SectionContent is a tagged union keyed by the section's Type: exactly one
// variant field is populated. A plain struct of optional variants keeps the
// JSON and BSON round-trips codec-free.
type SectionContent struct {
	About      *AboutContent    `json:"about,omitempty" bson:"about,omitempty"`
	Experience []ExperienceItem `json:"experience,omitempty" bson:"experience,omitempty"`
	Education  []EducationItem  `json:"education,omitempty" bson:"education,omitempty"`
	Skills     []Skill          `json:"skills,omitempty" bson:"skills,omitempty"`
	Projects   []Project        `json:"projects,omitempty" bson:"projects,omitempty"`
	Contact    *ContactContent  `json:"contact,omitempty" bson:"contact,omitempty"`
}

// Clone returns a deep copy of the content: the variant pointers and every
// inner slice are duplicated, so a holder can edit items without writing
// through to the source.
func (c SectionContent) Clone() SectionContent {
	out := c
	if c.About != nil {
		about := *c.About
		out.About = &about
	}
	out.Experience = slices.Clone(c.Experience)
	out.Education = slices.Clone(c.Education)
	out.Skills = slices.Clone(c.Skills)
	out.Projects = slices.Clone(c.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(out.Projects[i].Technologies)
	}
	if c.Contact != nil {
		contact := *c.Contact
		contact.SocialLinks = slices.Clone(c.Contact.SocialLinks)
		out.Contact = &contact
	}
	return out
}

// AboutContent is free-form introductory text with an optional portrait.
type AboutContent struct {
	Text     string `json:"text" bson:"text"`
	ImageURL string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// ExperienceItem is one employment entry.
type ExperienceItem struct {
	ID          string `json:"id" bson:"id"`
	Company     string `json:"company" bson:"company"`
	Position    string `json:"position" bson:"position"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	StartDate   string `json:"start_date" bson:"start_date"`
	EndDate     string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Current     bool   `json:"current" bson:"current"`
	Description string `json:"description" bson:"description"`
}

// EducationItem is one study entry.
type EducationItem struct {
	ID          string `json:"id" bson:"id"`
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	Field       string `json:"field,omitempty" bson:"field,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	StartDate   string `json:"start_date" bson:"start_date"`
	EndDate     string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Current     bool   `json:"current" bson:"current"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Skill is a named competency, optionally rated 1-5 and grouped by category.
type Skill struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Level    int    `json:"level,omitempty" bson:"level,omitempty"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
}

// Project is a showcased piece of work.
type Project struct {
	ID           string   `json:"id" bson:"id"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Technologies []string `json:"technologies" bson:"technologies"`
	ImageURL     string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty" bson:"live_url,omitempty"`
	RepoURL      string   `json:"repo_url,omitempty" bson:"repo_url,omitempty"`
}

// SocialLink points at a profile on an external platform.
type SocialLink struct {
	Platform string `json:"platform" bson:"platform"`
	URL      string `json:"url" bson:"url"`
}

// ContactContent holds the ways to reach the portfolio owner.
type ContactContent struct {
	Email       string       `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Website     string       `json:"website,omitempty" bson:"website,omitempty"`
	Location    string       `json:"location,omitempty" bson:"location,omitempty"`
	SocialLinks []SocialLink `json:"social_links,omitempty" bson:"social_links,omitempty"`
}

// DefaultContent returns the empty content shape for a section type, so a
// freshly added section always carries its variant rather than a nil union.
func DefaultContent(t SectionType) SectionContent {
	switch t {
	case SectionAbout:
		return SectionContent{About: &AboutContent{}}
	case SectionExperience:
		return SectionContent{Experience: []ExperienceItem{}}
	case SectionEducation:
		return SectionContent{Education: []EducationItem{}}
	case SectionSkills:
		return SectionContent{Skills: []Skill{}}
	case SectionProjects:
		return SectionContent{Projects: []Project{}}
	case SectionContact:
		return SectionContent{Contact: &ContactContent{}}
	default:
		return SectionContent{}
	}
}

// SectionUpdate is a partial update shallow-merged into an existing section.
// Nil fields are left untouched.
type SectionUpdate struct {
	Title   *string
	Order   *int
	Content *SectionContent
}
