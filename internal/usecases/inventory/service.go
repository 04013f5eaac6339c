package inventory

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

// PageSize é a quantidade de itens por página na listagem
const PageSize = 10

type InventoryService interface {
	CreateItem(request *domain.CreateItemRequest) (*domain.Item, error)
	UpdateItem(request *domain.UpdateItemRequest) (*domain.Item, error)
	GetItem(id string) (*domain.Item, error)
	DeleteItem(id string) error
	ListItems(page int) (*domain.ItemPage, error)
}

type Service struct {
	itemRepository repository.ItemRepository
}

func NewService(itemRepository repository.ItemRepository) InventoryService {
	return &Service{
		itemRepository: itemRepository,
	}
}

func (s *Service) CreateItem(request *domain.CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewItemError(ErrInvalidName, apiErrors.ErrMissingRequiredData, "", "")
	}

	if request.Price == nil || *request.Price < 0 {
		return nil, NewItemError(ErrInvalidPrice, apiErrors.ErrInvalidRequest, "", "")
	}

	item, err := s.itemRepository.Create(&domain.Item{
		Name:  name,
		Price: *request.Price,
	})
	if err != nil {
		return nil, s.storageError(err, "", name)
	}

	logrus.WithFields(logrus.Fields{
		"item_id": item.ID,
		"name":    item.Name,
	}).Info("Item cadastrado")

	return item, nil
}

func (s *Service) UpdateItem(request *domain.UpdateItemRequest) (*domain.Item, error) {
	item, err := s.GetItem(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewItemError(ErrInvalidName, apiErrors.ErrMissingRequiredData, request.ID, "")
		}
		item.Name = name
	}

	if request.Price != nil {
		if *request.Price < 0 {
			return nil, NewItemError(ErrInvalidPrice, apiErrors.ErrInvalidRequest, request.ID, "")
		}
		item.Price = *request.Price
	}

	if err := s.itemRepository.Update(item); err != nil {
		return nil, s.storageError(err, item.ID, item.Name)
	}

	return item, nil
}

func (s *Service) GetItem(id string) (*domain.Item, error) {
	item, err := s.itemRepository.GetByID(id)
	if err != nil {
		return nil, NewItemError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if item == nil {
		return nil, NewItemError(ErrItemNotFound, apiErrors.ErrItemNotFound, id, "")
	}

	return item, nil
}

// DeleteItem remove o item junto com as vendas que o referenciam
func (s *Service) DeleteItem(id string) error {
	rowsAffected, err := s.itemRepository.Delete(id)
	if err != nil {
		return NewItemError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if rowsAffected == 0 {
		return NewItemError(ErrItemNotFound, apiErrors.ErrItemNotFound, id, "")
	}

	logrus.WithField("item_id", id).Info("Item removido com suas vendas")
	return nil
}

// ListItems retorna a página solicitada (a partir de 1), itens alterados recentemente primeiro
func (s *Service) ListItems(page int) (*domain.ItemPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.itemRepository.Count()
	if err != nil {
		return nil, NewItemError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	items, err := s.itemRepository.List(PageSize, uint64((page-1)*PageSize))
	if err != nil {
		return nil, NewItemError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	if items == nil {
		items = []*domain.Item{}
	}

	return &domain.ItemPage{
		Items:      items,
		Page:       page,
		PageSize:   PageSize,
		TotalItems: total,
		TotalPages: (total + PageSize - 1) / PageSize,
	}, nil
}

func (s *Service) storageError(err error, itemID, name string) error {
	if errors.Is(err, repository.ErrUniqueViolation) {
		return NewItemError(ErrItemAlreadyExists, apiErrors.ErrIntegrityViolation, itemID, name)
	}

	logrus.WithError(err).WithField("item_id", itemID).Error("Erro ao gravar item")
	return NewItemError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, itemID, err.Error())
}
