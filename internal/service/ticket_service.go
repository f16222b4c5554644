package service

import (
	"context"
	"errors"
	"strings"

	"github.com/psds-microservice/helpdesk-service/internal/errs"
	"github.com/psds-microservice/helpdesk-service/internal/model"
	"gorm.io/gorm"
)

// TicketServicer — интерфейс сервиса тикетов (Dependency Inversion для хендлеров и тестов).
type TicketServicer interface {
	Create(ctx context.Context, t *model.Ticket) error
	GetByID(ctx context.Context, id uint64) (*model.Ticket, error)
	List(ctx context.Context, status, sortBy, order string) ([]model.Ticket, error)
	Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Ticket, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
}

// StatusCount — строка ответа GET /stats.
type StatusCount struct {
	Status model.TicketStatus `json:"status"`
	Count  int64              `json:"count"`
}

type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

// Create сохраняет новый тикет. Статус всегда pending — что бы ни прислал клиент.
func (s *TicketService) Create(ctx context.Context, t *model.Ticket) error {
	t.Status = model.TicketStatusPending
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *TicketService) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
	var t model.Ticket
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List возвращает тикеты с опциональным фильтром по статусу и сортировкой.
// Нераспознанный статус — фильтр не применяется; нераспознанные sortBy/order —
// сортировка не применяется вовсе. Так вёл себя исходный API, клиенты на это
// рассчитывают.
func (s *TicketService) List(ctx context.Context, status, sortBy, order string) ([]model.Ticket, error) {
	var items []model.Ticket
	tx := s.db.WithContext(ctx).Model(&model.Ticket{})
	if model.TicketStatus(status).Valid() {
		tx = tx.Where("status = ?", status)
	}
	order = strings.ToUpper(order)
	if model.SortFields[sortBy] && (order == "ASC" || order == "DESC") {
		tx = tx.Order(sortBy + " " + order)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update применяет частичное обновление и перечитывает строку: клиент сверяет
// своё состояние с тем, что реально сохранено (включая updated_at).
func (s *TicketService) Update(ctx context.Context, id uint64, changes map[string]interface{}) (*model.Ticket, error) {
	var t model.Ticket
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&t).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TicketService) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := s.db.WithContext(ctx).
		Model(&model.Ticket{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
