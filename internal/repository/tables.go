package repository

import (
	"context"
	"fmt"

	"hackerNews/internal/models"
)

type tablesRepository struct {
	db Querier
}

func NewTablesRepository(db Querier) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountTablesDB(ctx context.Context) (*models.TablesStats, error) {
	var stats models.TablesStats

	err := r.db.GetContext(ctx, &stats.Tables, `
			SELECT COUNT(*) 
			FROM information_schema.tables 
			WHERE table_schema = 'public'
		`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте таблиц базы данных: %w", err)
	}

	counters := []struct {
		table string
		dest  *int
	}{
		{"users", &stats.Users},
		{"posts", &stats.Posts},
		{"comments", &stats.Comments},
		{"likes", &stats.Likes},
	}

	for _, c := range counters {
		if err := r.db.GetContext(ctx, c.dest, "SELECT COUNT(*) FROM "+c.table); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте строк таблицы %s: %w", c.table, err)
		}
	}

	return &stats, nil
}
