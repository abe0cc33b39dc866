package orderrepo

import (
	"context"
	"errors"

	"trading/internal/core/domain/domainerr"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts the order or overwrites the row with the same order id.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByID retrieves an order by ID.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.NewOrderNotFoundError(id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.find(r.newest(ctx).Where("user_id = ?", userID))
}

func (r *GormOrderRepository) FindBySymbol(ctx context.Context, symbol string) ([]*order.Order, error) {
	return r.find(r.newest(ctx).Where("symbol = ?", symbol))
}

func (r *GormOrderRepository) FindOpenOrders(ctx context.Context, userID string) ([]*order.Order, error) {
	return r.find(byUser(r.newest(ctx).Where("status IN ?", openStatusTags()), userID))
}

// CountOpenOrdersBySymbol runs a single COUNT ... GROUP BY symbol query.
func (r *GormOrderRepository) CountOpenOrdersBySymbol(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Symbol string
		Total  int
	}

	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("symbol, COUNT(*) AS total").
		Where("status IN ?", openStatusTags()).
		Group("symbol").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Symbol] = row.Total
	}
	return counts, nil
}

func (r *GormOrderRepository) FindByStatus(
	ctx context.Context,
	status order.Status,
	userID string,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.find(byUser(r.newest(ctx).Where("status = ?", status.String()), userID))
}

// Delete removes the order with the given id. Unknown ids are ignored.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "order_id = ?", id.String()).Error
}

func (r *GormOrderRepository) newest(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&OrderDTO{}).Order("created_at DESC")
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func openStatusTags() []string {
	open := order.OpenStatuses()
	tags := make([]string, 0, len(open))
	for _, s := range open {
		tags = append(tags, s.String())
	}
	return tags
}

func byUser(query *gorm.DB, userID string) *gorm.DB {
	if userID == "" {
		return query
	}
	return query.Where("user_id = ?", userID)
}
