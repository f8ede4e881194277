package viewmodels

import "html/template"

type BrowsePage struct {
	BaseViewModel

	UserID string
	Rows   []template.HTML
}
