package response

import (
	"stayhub/internal/usecase/readmodel"
)

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type RegisterResponse struct {
	User *readmodel.AuthorizedUserRM `json:"user"`
}
