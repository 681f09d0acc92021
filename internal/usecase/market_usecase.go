package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/infrastructure/mailer"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase/dto"
)

// MarketUseCase обрабатывает бизнес-логику маркетплейса
type MarketUseCase struct {
	itemRepo     repository.ItemRepository
	profileRepo  repository.ProfileRepository
	favoriteRepo repository.FavoriteRepository
	storageRepo  repository.StorageRepository
	mailer       *mailer.Mailer
	logger       *zap.Logger
}

// NewMarketUseCase создает новый экземпляр MarketUseCase
func NewMarketUseCase(
	itemRepo repository.ItemRepository,
	profileRepo repository.ProfileRepository,
	favoriteRepo repository.FavoriteRepository,
	storageRepo repository.StorageRepository,
	m *mailer.Mailer,
	logger *zap.Logger,
) *MarketUseCase {
	return &MarketUseCase{
		itemRepo:     itemRepo,
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
		storageRepo:  storageRepo,
		mailer:       m,
		logger:       logger,
	}
}

// CreateItem выставляет товар на продажу
func (uc *MarketUseCase) CreateItem(ctx context.Context, userID uuid.UUID, req *dto.CreateItemRequest, image *SpotImage) (*domain.Item, error) {
	if !domain.IsValidItemType(req.Type) || !domain.IsValidItemCondition(req.Condition) {
		return nil, errors.ErrInvalidRequest
	}

	item := &domain.Item{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ItemType(req.Type),
		Condition:   domain.ItemCondition(req.Condition),
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	if image != nil {
		objectName := fmt.Sprintf("items/%s", item.ID)
		url, err := uc.storageRepo.Upload(ctx, objectName, image.Reader, image.Size, image.ContentType)
		if err != nil {
			return nil, err
		}
		item.ImageURL = &url
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.logger.Info("Item listed",
		zap.String("id", item.ID.String()),
		zap.String("type", string(item.Type)),
		zap.Float64("price", item.Price))

	return item, nil
}

// GetItems возвращает товары с фильтром по типу
func (uc *MarketUseCase) GetItems(ctx context.Context, itemType string, includeSold bool) ([]*domain.Item, error) {
	if itemType != "" && itemType != "all" && !domain.IsValidItemType(itemType) {
		return nil, errors.ErrInvalidRequest
	}
	return uc.itemRepo.GetAll(ctx, itemType, includeSold)
}

// GetMyItems возвращает товары пользователя, включая проданные
func (uc *MarketUseCase) GetMyItems(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	return uc.itemRepo.GetByUser(ctx, userID)
}

// GetItem возвращает товар по ID
func (uc *MarketUseCase) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// ToggleFavorite переключает товар в избранном пользователя.
// Возвращает новое состояние: true, если товар теперь в избранном.
func (uc *MarketUseCase) ToggleFavorite(ctx context.Context, itemID, userID uuid.UUID) (bool, error) {
	if _, err := uc.itemRepo.GetByID(ctx, itemID); err != nil {
		return false, err
	}

	exists, err := uc.favoriteRepo.Exists(ctx, userID, itemID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, userID, itemID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.favoriteRepo.Add(ctx, userID, itemID); err != nil {
		return false, err
	}
	return true, nil
}

// GetFavorites возвращает избранные товары пользователя
func (uc *MarketUseCase) GetFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	return uc.favoriteRepo.GetItems(ctx, userID)
}

// Purchase покупает товар с баланса пользователя. Сам перевод атомарен
// на уровне репозитория; здесь проверки и уведомления.
func (uc *MarketUseCase) Purchase(ctx context.Context, itemID, buyerID uuid.UUID) (*domain.Item, error) {
	if err := uc.itemRepo.Purchase(ctx, itemID, buyerID); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Item purchased",
		zap.String("item_id", itemID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.Float64("price", item.Price))

	uc.notifyPurchase(ctx, item, buyerID)

	return item, nil
}

// DeleteItem снимает товар с продажи. Разрешено владельцу и админам.
func (uc *MarketUseCase) DeleteItem(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if item.UserID != userID && !isAdmin {
		return errors.ErrForbidden
	}
	if item.IsSold {
		return errors.ErrItemSold
	}

	return uc.itemRepo.Delete(ctx, id)
}

// notifyPurchase шлёт письма покупателю и продавцу. Ошибки почты не
// влияют на результат покупки.
func (uc *MarketUseCase) notifyPurchase(ctx context.Context, item *domain.Item, buyerID uuid.UUID) {
	if buyer, err := uc.profileRepo.GetByID(ctx, buyerID); err == nil && buyer.Email != "" {
		if err := uc.mailer.SendPurchaseReceipt(buyer.Email, item.Title, item.Price); err != nil {
			uc.logger.Warn("Failed to send purchase receipt", zap.Error(err))
		}
	}

	if seller, err := uc.profileRepo.GetByID(ctx, item.UserID); err == nil && seller.Email != "" {
		if err := uc.mailer.SendSaleNotice(seller.Email, item.Title, item.Price); err != nil {
			uc.logger.Warn("Failed to send sale notice", zap.Error(err))
		}
	}
}
