package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // JANGAN dikirim ke frontend
	Whatsapp     string    `json:"whatsapp,omitempty"`
	Address      string    `json:"address,omitempty"`
	AgreeToTerms bool      `json:"agreeToTerms"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PublicUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Whatsapp     string    `json:"whatsapp,omitempty"`
	Address      string    `json:"address,omitempty"`
	AgreeToTerms bool      `json:"agreeToTerms"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Whatsapp:     u.Whatsapp,
		Address:      u.Address,
		AgreeToTerms: u.AgreeToTerms,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
