package inventory

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }
func stringPtr(v string) *string { return &v }

func TestService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemRepository(ctrl)
	service := NewService(items)

	t.Run("nome é normalizado", func(t *testing.T) {
		items.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *domain.Item) (*domain.Item, error) {
			item.ID = "apple1"
			return item, nil
		})

		item, err := service.CreateItem(&domain.CreateItemRequest{Name: "  Apple ", Price: int64Ptr(100)})
		require.NoError(t, err)
		assert.Equal(t, "Apple", item.Name)
		assert.Equal(t, int64(100), item.Price)
	})

	t.Run("nome duplicado", func(t *testing.T) {
		items.EXPECT().Create(gomock.Any()).Return(nil, pkgerrors.Wrap(repository.ErrUniqueViolation, "items_name_key"))

		_, err := service.CreateItem(&domain.CreateItemRequest{Name: "Apple", Price: int64Ptr(100)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrItemAlreadyExists))

		var itemErr *ItemError
		require.True(t, errors.As(err, &itemErr))
		assert.Equal(t, apiErrors.ErrIntegrityViolation, itemErr.Code)
	})

	t.Run("nome em branco", func(t *testing.T) {
		_, err := service.CreateItem(&domain.CreateItemRequest{Name: "   ", Price: int64Ptr(1)})
		assert.True(t, errors.Is(err, ErrInvalidName))
	})

	t.Run("preço negativo", func(t *testing.T) {
		_, err := service.CreateItem(&domain.CreateItemRequest{Name: "Apple", Price: int64Ptr(-1)})
		assert.True(t, errors.Is(err, ErrInvalidPrice))
	})
}

func TestService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemRepository(ctrl)
	service := NewService(items)

	t.Run("altera apenas o preço", func(t *testing.T) {
		items.EXPECT().GetByID("apple1").Return(&domain.Item{ID: "apple1", Name: "Apple", Price: 100}, nil)
		items.EXPECT().Update(gomock.Any()).Return(nil)

		item, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "apple1", Price: int64Ptr(150)})
		require.NoError(t, err)
		assert.Equal(t, "Apple", item.Name)
		assert.Equal(t, int64(150), item.Price)
	})

	t.Run("renomear para nome existente", func(t *testing.T) {
		items.EXPECT().GetByID("apple1").Return(&domain.Item{ID: "apple1", Name: "Apple", Price: 100}, nil)
		items.EXPECT().Update(gomock.Any()).Return(pkgerrors.Wrap(repository.ErrUniqueViolation, "items_name_key"))

		_, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "apple1", Name: stringPtr("Banana")})
		assert.True(t, errors.Is(err, ErrItemAlreadyExists))
	})

	t.Run("item inexistente", func(t *testing.T) {
		items.EXPECT().GetByID("missing").Return(nil, nil)

		_, err := service.UpdateItem(&domain.UpdateItemRequest{ID: "missing", Price: int64Ptr(1)})
		assert.True(t, errors.Is(err, ErrItemNotFound))
	})
}

func TestService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemRepository(ctrl)
	service := NewService(items)

	items.EXPECT().Delete("apple1").Return(int64(1), nil)
	assert.NoError(t, service.DeleteItem("apple1"))

	items.EXPECT().Delete("missing").Return(int64(0), nil)
	assert.True(t, errors.Is(service.DeleteItem("missing"), ErrItemNotFound))
}

func TestService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mocks.NewMockItemRepository(ctrl)
	service := NewService(items)

	t.Run("segunda página", func(t *testing.T) {
		items.EXPECT().Count().Return(23, nil)
		items.EXPECT().List(uint64(10), uint64(10)).Return([]*domain.Item{{ID: "a"}, {ID: "b"}}, nil)

		page, err := service.ListItems(2)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 23, page.TotalItems)
		assert.Len(t, page.Items, 2)
	})

	t.Run("página inválida vira a primeira", func(t *testing.T) {
		items.EXPECT().Count().Return(0, nil)
		items.EXPECT().List(uint64(10), uint64(0)).Return(nil, nil)

		page, err := service.ListItems(0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 0, page.TotalPages)
		assert.NotNil(t, page.Items)
	})
}
