package repository

import (
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fruit-shop-api/infrastructure/database/postgres"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

const (
	salesTable        = "sales s"
	selectSaleColumns = "s.id, s.item_id, i.name, s.quantity, s.amount, s.sold_at, s.created_at, s.updated_at"
)

type SaleRepository interface {
	Create(sale *domain.Sale) (*domain.Sale, error)
	Update(sale *domain.Sale) error
	Delete(id string) (int64, error)
	GetByID(id string) (*domain.Sale, error)
	ListAll() ([]*domain.Sale, error)
	ListByDate(filter *domain.SaleFilter) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn     postgres.Queryer
	location *time.Location
}

// NewSaleRepository cria o repositório de vendas. location define o fuso usado
// nos filtros por ano, mês e dia.
func NewSaleRepository(conn postgres.Queryer, location *time.Location) SaleRepository {
	if location == nil {
		location = time.Local
	}

	return &saleRepository{
		conn:     conn,
		location: location,
	}
}

func (r *saleRepository) selectSales() squirrel.SelectBuilder {
	return squirrel.
		Select(selectSaleColumns).
		From(salesTable).
		Join("items i ON i.id = s.item_id").
		PlaceholderFormat(squirrel.Dollar)
}

// Create insere a venda com o valor já resolvido; o valor nunca é recalculado pelo banco
func (r *saleRepository) Create(sale *domain.Sale) (*domain.Sale, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da venda")
	}

	query, args, err := squirrel.
		Insert("sales").
		Columns("id", "item_id", "quantity", "amount", "sold_at").
		Values(id, sale.ItemID, sale.Quantity, sale.Amount, sale.SoldAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	sale.ID = id
	if err := r.conn.QueryRow(query, args...).Scan(&sale.CreatedAt, &sale.UpdatedAt); err != nil {
		return nil, wrapDBError(err, "erro ao inserir venda")
	}

	return sale, nil
}

// Update altera apenas quantidade e data da venda
func (r *saleRepository) Update(sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		Set("quantity", sale.Quantity).
		Set("sold_at", sale.SoldAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	return wrapDBError(err, "erro ao atualizar venda")
}

func (r *saleRepository) Delete(id string) (int64, error) {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, wrapDBError(err, "erro ao remover venda")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected, nil
}

func (r *saleRepository) GetByID(id string) (*domain.Sale, error) {
	query, args, err := r.selectSales().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	sale, err := scanSale(r.conn.QueryRow(query, args...))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err, "erro ao buscar venda")
	}

	return sale, nil
}

func (r *saleRepository) ListAll() ([]*domain.Sale, error) {
	return r.list(r.selectSales())
}

// ListByDate lista as vendas do ano, mês ou dia informados no filtro.
// Mês exige ano e dia exige mês.
func (r *saleRepository) ListByDate(filter *domain.SaleFilter) ([]*domain.Sale, error) {
	if filter.IsEmpty() {
		return r.ListAll()
	}

	start, end, err := dateRange(filter, r.location)
	if err != nil {
		return nil, err
	}

	return r.list(r.selectSales().
		Where(squirrel.GtOrEq{"s.sold_at": start}).
		Where(squirrel.Lt{"s.sold_at": end}))
}

func (r *saleRepository) list(builder squirrel.SelectBuilder) ([]*domain.Sale, error) {
	query, args, err := builder.OrderBy("s.sold_at DESC").ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao listar vendas")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	err := row.Scan(
		&sale.ID,
		&sale.ItemID,
		&sale.ItemName,
		&sale.Quantity,
		&sale.Amount,
		&sale.SoldAt,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

var ErrInvalidDateFilter = stderrors.New("filtro de data inválido")

// dateRange converte o filtro em um intervalo [start, end) no fuso informado
func dateRange(filter *domain.SaleFilter, location *time.Location) (time.Time, time.Time, error) {
	switch {
	case filter.Year <= 0:
		return time.Time{}, time.Time{}, errors.Wrap(ErrInvalidDateFilter, "ano é obrigatório")
	case filter.Day > 0 && filter.Month == 0:
		return time.Time{}, time.Time{}, errors.Wrap(ErrInvalidDateFilter, "dia exige mês")
	case filter.Month < 0 || filter.Month > 12:
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidDateFilter, "mês %d", filter.Month)
	case filter.Day < 0 || filter.Day > 31:
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidDateFilter, "dia %d", filter.Day)
	}

	if filter.Month == 0 {
		start := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, location)
		return start, start.AddDate(1, 0, 0), nil
	}

	if filter.Day == 0 {
		start := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, location)
		return start, start.AddDate(0, 1, 0), nil
	}

	start := time.Date(filter.Year, time.Month(filter.Month), filter.Day, 0, 0, 0, 0, location)
	if start.Day() != filter.Day {
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidDateFilter, "dia %d", filter.Day)
	}
	return start, start.AddDate(0, 0, 1), nil
}
