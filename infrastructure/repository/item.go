package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fruit-shop-api/infrastructure/database/postgres"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

const (
	itemsTable        = "items"
	selectItemColumns = "id, name, price, created_at, updated_at"
)

type ItemRepository interface {
	Create(item *domain.Item) (*domain.Item, error)
	Update(item *domain.Item) error
	Delete(id string) (int64, error)
	GetByID(id string) (*domain.Item, error)
	GetByName(name string) (*domain.Item, error)
	List(limit, offset uint64) ([]*domain.Item, error)
	Count() (int, error)
}

type itemRepository struct {
	conn *postgres.Connection
}

func NewItemRepository(conn *postgres.Connection) ItemRepository {
	return &itemRepository{
		conn: conn,
	}
}

func (r *itemRepository) Create(item *domain.Item) (*domain.Item, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do item")
	}

	query, args, err := squirrel.
		Insert(itemsTable).
		Columns("id", "name", "price").
		Values(id, item.Name, item.Price).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	item.ID = id
	err = r.conn.QueryRow(query, args...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, wrapDBError(err, "erro ao inserir item")
	}

	return item, nil
}

func (r *itemRepository) Update(item *domain.Item) error {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("name", item.Name).
		Set("price", item.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	return wrapDBError(err, "erro ao atualizar item")
}

// Delete remove o item e, na mesma transação, todas as vendas que o referenciam
func (r *itemRepository) Delete(id string) (int64, error) {
	var rowsAffected int64

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		salesQuery, salesArgs, err := squirrel.
			Delete("sales").
			Where(squirrel.Eq{"item_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		if _, err := tx.Exec(salesQuery, salesArgs...); err != nil {
			return wrapDBError(err, "erro ao remover vendas do item")
		}

		itemQuery, itemArgs, err := squirrel.
			Delete(itemsTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		result, err := tx.Exec(itemQuery, itemArgs...)
		if err != nil {
			return wrapDBError(err, "erro ao remover item")
		}

		rowsAffected, err = result.RowsAffected()
		return errors.Wrap(err, "erro ao obter número de linhas afetadas")
	})
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

func (r *itemRepository) GetByID(id string) (*domain.Item, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *itemRepository) GetByName(name string) (*domain.Item, error) {
	return r.getOne(squirrel.Eq{"name": name})
}

func (r *itemRepository) getOne(where squirrel.Eq) (*domain.Item, error) {
	query, args, err := squirrel.
		Select(selectItemColumns).
		From(itemsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	item := &domain.Item{}
	err = r.conn.QueryRow(query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err, "erro ao buscar item")
	}

	return item, nil
}

func (r *itemRepository) List(limit, offset uint64) ([]*domain.Item, error) {
	query, args, err := squirrel.
		Select(selectItemColumns).
		From(itemsTable).
		OrderBy("updated_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao listar itens")
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return items, nil
}

func (r *itemRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(itemsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, wrapDBError(err, "erro ao contar itens")
	}

	return total, nil
}
