package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/loopers/member-api/pkg/response"
)

// ExampleHandler serves the public demo endpoint kept from the project
// template. It requires no authentication.
type ExampleHandler struct{}

func NewExampleHandler() *ExampleHandler { return &ExampleHandler{} }

type exampleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ExampleHandler) Get(c *gin.Context) {
	id := c.Param("exampleId")
	response.OK(c, exampleResponse{
		ID:          id,
		Name:        "example",
		Description: "a demo resource",
	}, "example")
}
