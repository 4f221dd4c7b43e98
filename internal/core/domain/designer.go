package domain

// DesignerProfile is the 1:1 extension of a user with RoleDesigner.
// Deleting the owning user cascades to the profile and its specialties.
type DesignerProfile struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	Company           string   `json:"company,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Website           string   `json:"website,omitempty"`
	Address           string   `json:"address,omitempty"`
	Avatar            string   `json:"avatar,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	ExperienceYears   int      `json:"experience"`
	CompletedProjects int      `json:"completed_projects"`
	Rating            float64  `json:"rating"`
	Verified          bool     `json:"verified"`
	PortfolioViews    int      `json:"portfolio_views"`
	PortfolioLikes    int      `json:"portfolio_likes"`
	Specialties       []string `json:"specialties"`
}

// Application is a pending designer registration as reviewed by admins:
// the user row joined with its profile and specialties.
type Application struct {
	User    User            `json:"user"`
	Profile DesignerProfile `json:"profile"`
}
