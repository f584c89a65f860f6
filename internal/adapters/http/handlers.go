package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindPatch decodes a {id, ...fields} body into the id and the
// remaining top-level fields used as the shallow-merge patch.
func bindPatch(c echo.Context) (string, map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid data")
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "ID required")
	}
	delete(body, "id")

	return id, body, nil
}

// idQueryParam extracts the ?id= parameter used by delete routes.
func idQueryParam(c echo.Context) (string, error) {
	id := c.QueryParam("id")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "ID required")
	}
	return id, nil
}

// respondUpdate maps the (found, err) repository result to the
// conventional {success} / 404 / 500 responses.
func respondUpdate(c echo.Context, found bool, err error, notFoundMsg string) error {
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save data")
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
