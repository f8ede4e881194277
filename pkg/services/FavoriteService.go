package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adampresley/adamgokit/slices"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/rfberaldo/sqlz"
)

/*
FavoriteServicer is the saved-list repository. Saving is idempotent and
nothing is ever removed.
*/
type FavoriteServicer interface {
	Add(visitorID, animeID, title string) (bool, error)
	Contains(visitorID string, animeIDs []string) (map[string]bool, error)
	List(visitorID string) ([]models.Favorite, error)
}

type FavoriteServiceConfig struct {
	DB *sqlz.DB
}

type FavoriteService struct {
	db *sqlz.DB
}

func NewFavoriteService(config FavoriteServiceConfig) FavoriteService {
	return FavoriteService{
		db: config.DB,
	}
}

/*
Add saves an anime to the visitor's list. The returned bool is true when
the anime was not already saved.
*/
func (s FavoriteService) Add(visitorID, animeID, title string) (bool, error) {
	var (
		err      error
		favorite models.Favorite
	)

	if visitorID == "" || animeID == "" {
		return false, fmt.Errorf("visitor ID and anime ID are required")
	}

	sql := `
SELECT
   f.visitor_id
   , f.anime_id
   , f.title
   , f.created_at
FROM favorites AS f
WHERE 1=1
   AND f.visitor_id = ?
   AND f.anime_id = ?
`

	params := []any{visitorID, animeID}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err = s.db.QueryRow(ctx, &favorite, sql, params...)

	if err == nil {
		return false, nil
	}

	if !sqlz.IsNotFound(err) {
		return false, fmt.Errorf("error checking favorite for visitor %s, anime %s: %w", visitorID, animeID, err)
	}

	/*
	 * Two requests can race past the check above. The conflict clause keeps
	 * the list free of duplicates either way.
	 */
	sql = `
INSERT INTO favorites (
   visitor_id,
   anime_id,
   title
) VALUES (?, ?, ?)
ON CONFLICT (visitor_id, anime_id) DO NOTHING
`

	ctx, cancel = context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result, err := s.db.Exec(ctx, sql, visitorID, animeID, title)

	if err != nil {
		return false, fmt.Errorf("error adding favorite for visitor %s, anime %s: %w", visitorID, animeID, err)
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return false, fmt.Errorf("error reading insert result for visitor %s, anime %s: %w", visitorID, animeID, err)
	}

	return affected == 1, nil
}

/*
Contains reports which of the given anime IDs are on the visitor's list.
*/
func (s FavoriteService) Contains(visitorID string, animeIDs []string) (map[string]bool, error) {
	var (
		err       error
		favorites []models.Favorite
	)

	result := map[string]bool{}

	if visitorID == "" || len(animeIDs) == 0 {
		return result, nil
	}

	if favorites, err = s.List(visitorID); err != nil {
		return result, err
	}

	saved := slices.Map(favorites, func(input models.Favorite, index int) string {
		return input.AnimeID
	})

	for _, id := range animeIDs {
		if slices.IsInSlice(id, saved) {
			result[id] = true
		}
	}

	return result, nil
}

func (s FavoriteService) List(visitorID string) ([]models.Favorite, error) {
	var (
		err error
	)

	result := []models.Favorite{}

	sql := `
SELECT
   f.visitor_id
   , f.anime_id
   , f.title
   , f.created_at
FROM favorites AS f
WHERE 1=1
   AND f.visitor_id = ?
ORDER BY f.created_at, f.rowid
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &result, sql, visitorID); err != nil {
		if sqlz.IsNotFound(err) {
			return []models.Favorite{}, nil
		}

		return result, fmt.Errorf("error querying favorites for visitor %s: %w", visitorID, err)
	}

	return result, nil
}
