package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/themenu/internal/catalog"
	"github.com/jask/themenu/internal/database/repository"
	"github.com/jask/themenu/internal/order"
)

// SeedCatalog writes cats when the store holds no items yet. It is
// idempotent and safe to run on every startup; a curated catalog file is left
// alone.
func SeedCatalog(ctx context.Context, db *sql.DB, cats []catalog.Category) (bool, error) {
	n, err := repository.NewMenuRepo(db).CountItems(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewMenuRepo(tx)
		for ci, cat := range cats {
			if err := repo.UpsertCategory(ctx, repository.Category{Name: cat.Name, SortOrder: ci}); err != nil {
				return fmt.Errorf("seed category %s: %w", cat.Name, err)
			}
			for ii, it := range cat.Items {
				row := repository.MenuItem{
					ID:          it.ID,
					Category:    cat.Name,
					Name:        it.Name,
					Price:       it.Price,
					Description: it.Description,
					Image:       it.Image,
					SortOrder:   ii,
				}
				if err := repo.UpsertItem(ctx, row); err != nil {
					return fmt.Errorf("seed item %s: %w", it.ID, err)
				}
			}
		}
		return nil
	})
	return err == nil, err
}

// LoadCatalog reads the menu back out of the store.
func LoadCatalog(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	repo := repository.NewMenuRepo(db)
	cats, err := repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	byCat := make(map[string][]order.MenuItem, len(cats))
	for _, it := range items {
		byCat[it.Category] = append(byCat[it.Category], order.MenuItem{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Description: it.Description,
			Image:       it.Image,
		})
	}
	out := make([]catalog.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, catalog.Category{Name: c.Name, Items: byCat[c.Name]})
	}
	return catalog.New(out)
}

// OpenCatalog opens the store at path, migrates it, seeds it with the house
// menu if empty and loads it.
func OpenCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	if _, err := SeedCatalog(ctx, db, catalog.BuiltinCategories()); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return LoadCatalog(ctx, db)
}
