package controller

import (
	"github.com/astoulakis/onboard/internal/pkg/uploads"
	"github.com/astoulakis/onboard/internal/service/registration"
)

type Controller struct {
	service *registration.Service
	intake  *uploads.Intake
}

func NewController(service *registration.Service, intake *uploads.Intake) *Controller {
	return &Controller{service: service, intake: intake}
}

// stepResponse points the client at the next wizard step. Failed steps
// never produce one; the caller must not build a continuation address out
// of an error response.
type stepResponse struct {
	ID   int64  `json:"id"`
	Next string `json:"next"`
}
