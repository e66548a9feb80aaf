package domain

// RepositoryRecord is one repository entry returned by the search endpoint.
// Records are never modified after they are received; UpdatedAt keeps the
// timestamp text exactly as the API sent it.
type RepositoryRecord struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	OwnerAvatarURL string `json:"owner_avatar_url"`
	StarCount      int    `json:"stargazers_count"`
	ForkCount      int    `json:"forks_count"`
	OpenIssueCount int    `json:"open_issues_count"`
	UpdatedAt      string `json:"updated_at"`
	HTMLURL        string `json:"html_url"`
}

// UserProfile is the greeting data loaded by the profile query.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
