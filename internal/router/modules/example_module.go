package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/loopers/member-api/internal/interface/http"
)

type ExampleModule struct {
	Handler *handlers.ExampleHandler
}

func NewExampleModule(h *handlers.ExampleHandler) *ExampleModule {
	return &ExampleModule{Handler: h}
}

func (m *ExampleModule) Register(rg *gin.RouterGroup) {
	rg.GET("/v1/examples/:exampleId", m.Handler.Get)
}
