package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase/dto"
)

// CommentUseCase обрабатывает комментарии к спотам
type CommentUseCase struct {
	commentRepo repository.CommentRepository
	spotRepo    repository.SpotRepository
	logger      *zap.Logger
}

// NewCommentUseCase создает новый экземпляр CommentUseCase
func NewCommentUseCase(
	commentRepo repository.CommentRepository,
	spotRepo repository.SpotRepository,
	logger *zap.Logger,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		spotRepo:    spotRepo,
		logger:      logger,
	}
}

// Add добавляет комментарий к одобренному споту
func (uc *CommentUseCase) Add(ctx context.Context, spotID, userID uuid.UUID, username string, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	spot, err := uc.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if !spot.IsApproved {
		return nil, errors.ErrSpotNotApproved
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		SpotID:    spotID,
		UserID:    userID,
		Username:  username,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	uc.logger.Debug("Comment added",
		zap.String("spot_id", spotID.String()),
		zap.String("user_id", userID.String()))

	return comment, nil
}

// GetForSpot возвращает комментарии спота, новые первыми
func (uc *CommentUseCase) GetForSpot(ctx context.Context, spotID uuid.UUID) ([]domain.Comment, error) {
	if _, err := uc.spotRepo.GetByID(ctx, spotID); err != nil {
		return nil, err
	}
	return uc.commentRepo.GetBySpot(ctx, spotID)
}

// Delete удаляет комментарий. Разрешено автору и админам.
func (uc *CommentUseCase) Delete(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	comment, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.UserID != userID && !isAdmin {
		return errors.ErrForbidden
	}

	return uc.commentRepo.Delete(ctx, id)
}
