package http

import (
	"net/http"

	"ridehail/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// openAPIDoc feeds the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	b, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}

func openAPIDocument(c echo.Context) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}
