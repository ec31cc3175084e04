package handler

import (
	"classroom_manager/planner"
)

// Handler bundles the HTTP endpoints around the shared planner.
type Handler struct {
	planner *planner.Planner
}

func New(p *planner.Planner) *Handler {
	return &Handler{planner: p}
}
