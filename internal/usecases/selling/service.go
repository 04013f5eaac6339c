package selling

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

type SellingService interface {
	CreateSale(request *domain.CreateSaleRequest) (*domain.Sale, error)
	UpdateSale(request *domain.UpdateSaleRequest) (*domain.Sale, error)
	GetSale(id string) (*domain.Sale, error)
	DeleteSale(id string) error
	ListSales(filter *domain.SaleFilter) ([]*domain.Sale, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	itemRepository repository.ItemRepository
}

func NewService(saleRepository repository.SaleRepository, itemRepository repository.ItemRepository) SellingService {
	return &Service{
		saleRepository: saleRepository,
		itemRepository: itemRepository,
	}
}

// CreateSale registra uma venda. Sem valor informado, o valor é preço do item vezes
// quantidade; com valor informado, ele é gravado como veio.
func (s *Service) CreateSale(request *domain.CreateSaleRequest) (*domain.Sale, error) {
	if request.Quantity <= 0 {
		return nil, NewSaleError(ErrInvalidQuantity, apiErrors.ErrInvalidRequest, fmt.Sprintf("quantidade=%d", request.Quantity))
	}

	if request.Amount != nil && *request.Amount < 0 {
		return nil, NewSaleError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, fmt.Sprintf("valor=%d", *request.Amount))
	}

	item, err := s.itemRepository.GetByID(request.ItemID)
	if err != nil {
		logrus.WithError(err).WithField("item_id", request.ItemID).Error("Erro ao buscar item da venda")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if item == nil {
		return nil, NewSaleError(ErrItemNotFound, apiErrors.ErrItemNotFound, request.ItemID)
	}

	var amount int64
	if request.Amount != nil {
		amount = *request.Amount
	} else if amount, err = domain.ComputeAmount(item.Price, request.Quantity); err != nil {
		return nil, NewSaleError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, err.Error())
	}

	sale, err := s.saleRepository.Create(&domain.Sale{
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: request.Quantity,
		Amount:   amount,
		SoldAt:   request.SoldAt,
	})
	if err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Error("Erro ao registrar venda")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return sale, nil
}

// UpdateSale altera quantidade e/ou data; o valor congelado na criação permanece
func (s *Service) UpdateSale(request *domain.UpdateSaleRequest) (*domain.Sale, error) {
	if request.Quantity != nil && *request.Quantity <= 0 {
		return nil, NewSaleErrorWithID(ErrInvalidQuantity, apiErrors.ErrInvalidRequest, request.ID, fmt.Sprintf("quantidade=%d", *request.Quantity))
	}

	sale, err := s.GetSale(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Quantity != nil {
		sale.Quantity = *request.Quantity
	}

	if request.SoldAt != nil {
		sale.SoldAt = *request.SoldAt
	}

	if err := s.saleRepository.Update(sale); err != nil {
		logrus.WithError(err).WithField("sale_id", sale.ID).Error("Erro ao atualizar venda")
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, sale.ID, err.Error())
	}

	return sale, nil
}

func (s *Service) GetSale(id string) (*domain.Sale, error) {
	sale, err := s.saleRepository.GetByID(id)
	if err != nil {
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if sale == nil {
		return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "")
	}

	return sale, nil
}

func (s *Service) DeleteSale(id string) error {
	rowsAffected, err := s.saleRepository.Delete(id)
	if err != nil {
		return NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if rowsAffected == 0 {
		return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "")
	}

	return nil
}

// ListSales lista as vendas mais recentes primeiro, opcionalmente filtradas por ano, mês e dia
func (s *Service) ListSales(filter *domain.SaleFilter) ([]*domain.Sale, error) {
	var (
		sales []*domain.Sale
		err   error
	)

	if filter.IsEmpty() {
		sales, err = s.saleRepository.ListAll()
	} else {
		sales, err = s.saleRepository.ListByDate(filter)
	}

	if err != nil {
		if errors.Is(err, repository.ErrInvalidDateFilter) {
			return nil, NewSaleError(ErrInvalidFilter, apiErrors.ErrInvalidRequest, err.Error())
		}
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if sales == nil {
		sales = []*domain.Sale{}
	}

	return sales, nil
}
