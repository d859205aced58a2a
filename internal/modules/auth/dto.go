package auth

import "travelbook/internal/domain"

type RegisterRequest struct {
	Username         string `json:"username" binding:"required,min=3,max=64"`
	Password         string `json:"password" binding:"required,min=6,max=72"`
	Email            string `json:"email" binding:"required,email"`
	Role             string `json:"role" binding:"required"`
	TravelAgencyName string `json:"travel_agency_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
