package memory

import (
	"time"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

const (
	// DemoEmail and DemoPassword are the credentials the seeded demo account
	// accepts in memory mode.
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"

	demoUserID      = "user-1"
	demoPortfolioID = "portfolio-1"
)

func nowUTC() time.Time { return time.Now().UTC() }

// DemoUser returns the demo account, without a password hash. The auth
// repository hashes DemoPassword when it seeds.
func DemoUser() *domain.User {
	now := nowUTC()
	return &domain.User{
		ID:        demoUserID,
		Username:  "demouser",
		Email:     DemoEmail,
		FirstName: "Demo",
		LastName:  "User",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DemoPortfolio returns the seeded example portfolio owned by userID, with
// one section of every type.
func DemoPortfolio(userID string) *domain.Portfolio {
	created := time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2023, time.June, 20, 15, 30, 0, 0, time.UTC)

	return &domain.Portfolio{
		ID:       demoPortfolioID,
		UserID:   userID,
		Title:    "John Doe - Software Developer",
		Summary:  "Full-stack developer with 5+ years experience in web development",
		Slug:     "john-doe",
		IsPublic: true,
		Theme:    domain.DefaultTheme,
		Sections: []domain.PortfolioSection{
			{
				ID:          "section-1",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionAbout,
				Title:       "About Me",
				Order:       1,
				Content: domain.SectionContent{About: &domain.AboutContent{
					Text:     "I am a passionate software developer with experience in web and mobile development. I love creating beautiful and functional applications that solve real-world problems.",
					ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				}},
			},
			{
				ID:          "section-2",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionExperience,
				Title:       "Work Experience",
				Order:       2,
				Content: domain.SectionContent{Experience: []domain.ExperienceItem{
					{
						ID:          "exp-1",
						Company:     "Tech Innovators Inc.",
						Position:    "Senior Developer",
						Location:    "San Francisco, CA",
						StartDate:   "2021-01-01",
						Current:     true,
						Description: "Leading development of enterprise web applications using React, Node.js, and AWS.",
					},
					{
						ID:          "exp-2",
						Company:     "Digital Solutions LLC",
						Position:    "Web Developer",
						Location:    "Boston, MA",
						StartDate:   "2018-06-01",
						EndDate:     "2020-12-31",
						Description: "Developed responsive websites and e-commerce solutions using modern JavaScript frameworks.",
					},
				}},
			},
			{
				ID:          "section-3",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionEducation,
				Title:       "Education",
				Order:       3,
				Content: domain.SectionContent{Education: []domain.EducationItem{
					{
						ID:          "edu-1",
						Institution: "Massachusetts Institute of Technology",
						Degree:      "Master of Computer Science",
						Field:       "Software Engineering",
						Location:    "Cambridge, MA",
						StartDate:   "2016-09-01",
						EndDate:     "2018-05-31",
					},
					{
						ID:          "edu-2",
						Institution: "University of California, Berkeley",
						Degree:      "Bachelor of Science",
						Field:       "Computer Science",
						Location:    "Berkeley, CA",
						StartDate:   "2012-09-01",
						EndDate:     "2016-05-31",
					},
				}},
			},
			{
				ID:          "section-4",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionSkills,
				Title:       "Skills",
				Order:       4,
				Content: domain.SectionContent{Skills: []domain.Skill{
					{ID: "skill-1", Name: "React", Level: 5, Category: "Frontend"},
					{ID: "skill-2", Name: "TypeScript", Level: 4, Category: "Frontend"},
					{ID: "skill-3", Name: "Node.js", Level: 4, Category: "Backend"},
					{ID: "skill-4", Name: ".NET Core", Level: 3, Category: "Backend"},
					{ID: "skill-5", Name: "AWS", Level: 4, Category: "DevOps"},
					{ID: "skill-6", Name: "Azure", Level: 3, Category: "DevOps"},
					{ID: "skill-7", Name: "SQL", Level: 4, Category: "Database"},
					{ID: "skill-8", Name: "MongoDB", Level: 3, Category: "Database"},
				}},
			},
			{
				ID:          "section-5",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionProjects,
				Title:       "Projects",
				Order:       5,
				Content: domain.SectionContent{Projects: []domain.Project{
					{
						ID:           "proj-1",
						Title:        "E-commerce Platform",
						Description:  "A full-featured e-commerce platform with product management, user authentication, and payment processing.",
						Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
						ImageURL:     "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?auto=format&fit=crop&w=1200&q=80",
						LiveURL:      "https://example.com",
						RepoURL:      "https://github.com/example/repo",
					},
					{
						ID:           "proj-2",
						Title:        "Task Management App",
						Description:  "A Kanban-style task management application for teams with real-time updates.",
						Technologies: []string{"React", "Firebase", "Material UI"},
						ImageURL:     "https://images.unsplash.com/photo-1611224885990-ab7363d7f2a9?auto=format&fit=crop&w=1200&q=80",
						LiveURL:      "https://example.com",
						RepoURL:      "https://github.com/example/repo",
					},
				}},
			},
			{
				ID:          "section-6",
				PortfolioID: demoPortfolioID,
				Type:        domain.SectionContact,
				Title:       "Contact Information",
				Order:       6,
				Content: domain.SectionContent{Contact: &domain.ContactContent{
					Email:    "john.doe@example.com",
					Phone:    "+1 (555) 123-4567",
					Website:  "https://johndoe.com",
					Location: "San Francisco, CA",
					SocialLinks: []domain.SocialLink{
						{Platform: "LinkedIn", URL: "https://linkedin.com/in/johndoe"},
						{Platform: "GitHub", URL: "https://github.com/johndoe"},
						{Platform: "Twitter", URL: "https://twitter.com/johndoe"},
					},
				}},
			},
		},
		CreatedAt: created,
		UpdatedAt: updated,
	}
}
