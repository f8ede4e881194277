package viewmodels

import (
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

func GetVisitorFromContext(r *http.Request) *models.Visitor {
	if result, ok := r.Context().Value("visitor").(*models.Visitor); ok {
		return result
	}

	return &models.Visitor{}
}

/*
GetUserID returns the backend user ID the page was opened with, if any.
*/
func GetUserID(r *http.Request) string {
	return httphelpers.GetFromRequest[string](r, catalog.UserIDParam)
}
