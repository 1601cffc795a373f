package handlers

import (
	"context"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type EndpointInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type RootOutput struct {
	Body struct {
		Message   string         `json:"message"`
		Version   string         `json:"version"`
		Endpoints []EndpointInfo `json:"endpoints"`
	}
}

func (h *RootHandler) HandleRoot(ctx context.Context, input *struct{}) (*RootOutput, error) {
	res := &RootOutput{}
	res.Body.Message = "Eventily API"
	res.Body.Version = apiVersion
	res.Body.Endpoints = []EndpointInfo{
		{Name: "Categories", URL: "/categories"},
		{Name: "Events", URL: "/events"},
		{Name: "Attendees", URL: "/attendees"},
		{Name: "Registrations", URL: "/registrations"},
		{Name: "Documentation", URL: "/docs"},
	}
	return res, nil
}

type HealthOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func (h *RootHandler) HandleHealth(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	res := &HealthOutput{}
	res.Body.Status = "healthy"
	return res, nil
}
