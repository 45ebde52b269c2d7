package domain

// TemplateSection is one pre-titled, pre-ranked section in a template layout.
type TemplateSection struct {
	Type  SectionType `json:"type"`
	Title string      `json:"title"`
	Order int         `json:"order"`
}

// Template is a named section layout used to seed a new portfolio.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Sections    []TemplateSection `json:"sections"`
}

// Templates lists the built-in portfolio layouts.
var Templates = []Template{
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Clean and simple layout focusing on content",
		Sections: []TemplateSection{
			{Type: SectionAbout, Title: "About Me", Order: 1},
			{Type: SectionExperience, Title: "Experience", Order: 2},
			{Type: SectionSkills, Title: "Skills", Order: 3},
			{Type: SectionContact, Title: "Contact", Order: 4},
		},
	},
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Traditional corporate-style layout",
		Sections: []TemplateSection{
			{Type: SectionAbout, Title: "Professional Summary", Order: 1},
			{Type: SectionExperience, Title: "Work Experience", Order: 2},
			{Type: SectionEducation, Title: "Education", Order: 3},
			{Type: SectionSkills, Title: "Skills & Expertise", Order: 4},
			{Type: SectionProjects, Title: "Key Projects", Order: 5},
			{Type: SectionContact, Title: "Contact Information", Order: 6},
		},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Modern design for creative professionals",
		Sections: []TemplateSection{
			{Type: SectionAbout, Title: "Hello, World!", Order: 1},
			{Type: SectionProjects, Title: "Featured Work", Order: 2},
			{Type: SectionSkills, Title: "Toolkit", Order: 3},
			{Type: SectionExperience, Title: "Journey", Order: 4},
			{Type: SectionContact, Title: "Let's Connect", Order: 5},
		},
	},
	{
		ID:          "technical",
		Name:        "Technical",
		Description: "Perfect for developers and IT professionals",
		Sections: []TemplateSection{
			{Type: SectionAbout, Title: "Profile", Order: 1},
			{Type: SectionSkills, Title: "Technical Skills", Order: 2},
			{Type: SectionProjects, Title: "Projects & Contributions", Order: 3},
			{Type: SectionExperience, Title: "Work Experience", Order: 4},
			{Type: SectionEducation, Title: "Education & Certifications", Order: 5},
			{Type: SectionContact, Title: "Contact", Order: 6},
		},
	},
	{
		ID:          "researcher",
		Name:        "Academic",
		Description: "Ideal for researchers and educators",
		Sections: []TemplateSection{
			{Type: SectionAbout, Title: "Research Focus", Order: 1},
			{Type: SectionEducation, Title: "Academic Background", Order: 2},
			{Type: SectionExperience, Title: "Research Experience", Order: 3},
			{Type: SectionProjects, Title: "Publications & Projects", Order: 4},
			{Type: SectionSkills, Title: "Research Skills", Order: 5},
			{Type: SectionContact, Title: "Contact", Order: 6},
		},
	},
}

// TemplateByID looks up a built-in template.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
