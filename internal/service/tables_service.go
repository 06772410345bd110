package service

import (
	"context"

	"hackerNews/internal/models"
	"hackerNews/internal/repository"
)

type TablesService interface {
	GetTablesStats(ctx context.Context) (*models.TablesStats, error)
}

type tablesService struct {
	tx Transactor
}

func NewTablesService(tx Transactor) TablesService {
	return &tablesService{tx: tx}
}

// GetTablesStats counts all tables from one snapshot.
func (t *tablesService) GetTablesStats(ctx context.Context) (*models.TablesStats, error) {
	var stats *models.TablesStats

	err := t.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		var err error
		stats, err = rep.Tables.CountTablesDB(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
