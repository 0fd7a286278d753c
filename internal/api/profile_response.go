package api

// swagger:model api.ProfileUser
type ProfileUser struct {
	ID      int    `json:"_id" example:"1"`
	Name    string `json:"name" example:"Alice"`
	Email   string `json:"email" example:"alice@example.com"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
}

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	User ProfileUser `json:"user"`
}
