package viewmodels

import "github.com/kinetsulist/kinetsulist/pkg/models"

type MyListPage struct {
	BaseViewModel

	Favorites []models.Favorite
}
