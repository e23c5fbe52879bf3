package repository

import "context"

// MenuRepo handles categories and menu items.
type MenuRepo struct {
	db DBTX
}

func NewMenuRepo(db DBTX) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) UpsertCategory(ctx context.Context, c Category) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO categories(name, sort_order)
	VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET sort_order=excluded.sort_order;
	`, c.Name, c.SortOrder)
	return err
}

func (r *MenuRepo) UpsertItem(ctx context.Context, it MenuItem) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO menu_items(id, category, name, price, description, image, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 category=excluded.category,
	 name=excluded.name,
	 price=excluded.price,
	 description=excluded.description,
	 image=excluded.image,
	 sort_order=excluded.sort_order;
	`, it.ID, it.Category, it.Name, it.Price, it.Description, it.Image, it.SortOrder)
	return err
}

func (r *MenuRepo) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, sort_order FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListItems returns every item ordered by category position, then item
// position.
func (r *MenuRepo) ListItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT i.id, i.category, i.name, i.price, i.description, i.image, i.sort_order
	FROM menu_items i
	JOIN categories c ON c.name = i.category
	ORDER BY c.sort_order, i.sort_order, i.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.Category, &it.Name, &it.Price, &it.Description, &it.Image, &it.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *MenuRepo) CountItems(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}
