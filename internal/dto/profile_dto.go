package dto

import (
	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/service"
)

// Data Transfer Objects for the scoring profile endpoints

// UpdateProfileRequest: payload for replacing the profile. Importance maps
// every dimension to a level from 1 to 5, the preference is a pointer so a
// value of 0 survives binding.
type UpdateProfileRequest struct {
	Importance          map[models.Dimension]int `json:"importance" binding:"required"`
	PracticalPreference *int                     `json:"practical_preference" binding:"required"`
}

// ProfileResponse: the stored weights together with the importance levels
// they correspond to
type ProfileResponse struct {
	Weights             map[models.Dimension]int `json:"weights"`
	Importance          map[models.Dimension]int `json:"importance"`
	PracticalPreference int                      `json:"practical_preference"`
}

// FromProfileView converts the service view to the response DTO
func FromProfileView(view *service.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		Weights:             view.Weights,
		Importance:          view.Levels,
		PracticalPreference: view.PracticalPreference,
	}
}
