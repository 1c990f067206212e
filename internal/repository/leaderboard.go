package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/meal-battle-arena/internal/model"
)

// LeaderboardSort selects the column the leaderboard is ordered by.
type LeaderboardSort string

// Supported leaderboard sort keys.
const (
	SortByWins   LeaderboardSort = "wins"
	SortByWinPct LeaderboardSort = "win_pct"
)

// LeaderboardEntry is one meal's battle record augmented with its win
// ratio. WinPct is the exact wins/battles quotient; presentation layers
// decide how to round or scale it.
type LeaderboardEntry struct {
	ID         uint64           `json:"id"`
	Name       string           `json:"meal"`
	Cuisine    string           `json:"cuisine"`
	Price      float64          `json:"price"`
	Difficulty model.Difficulty `json:"difficulty"`
	Battles    uint64           `json:"battles"`
	Wins       uint64           `json:"wins"`
	WinPct     float64          `json:"win_pct"`
}

// Leaderboard returns every meal that is not deleted and has fought at
// least one battle, ordered descending by the requested key. Rows tied
// on the key keep the database's natural order; no secondary sort key
// is applied. The sort key is mapped onto a fixed ORDER BY clause, so
// nothing caller-supplied is ever spliced into the query.
func (r *MealRepo) Leaderboard(ctx context.Context, sortBy LeaderboardSort) ([]LeaderboardEntry, error) {
	q := "SELECT id, meal, cuisine, price, difficulty, battles, wins, (wins * 1.0 / battles) AS win_pct " +
		"FROM meals WHERE deleted = FALSE AND battles > 0"
	switch sortBy {
	case SortByWins:
		q += " ORDER BY wins DESC"
	case SortByWinPct:
		q += " ORDER BY win_pct DESC"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, sortBy)
	}

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]LeaderboardEntry, 0)
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Cuisine, &e.Price, &e.Difficulty, &e.Battles, &e.Wins, &e.WinPct); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
