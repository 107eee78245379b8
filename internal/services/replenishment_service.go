package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bodegamart/internal/caching"
	"bodegamart/internal/common"
	"bodegamart/internal/models"
	"bodegamart/internal/repositories"

	"github.com/google/uuid"
)

var ErrNotPending = errors.New("replenishment request is not pending")

type ReplenishmentService interface {
	Create(ctx context.Context, profileID, userID, productID, supplierID uuid.UUID, quantity int) (*models.ReplenishmentRequest, error)
	CreateBatch(ctx context.Context, profileID, userID, supplierID uuid.UUID, items []models.ReplenishmentItem) ([]*models.ReplenishmentRequest, error)
	List(ctx context.Context, profileID uuid.UUID) ([]*models.ReplenishmentRequest, error)
	Approve(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error)
	Reject(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error)
	Complete(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
}

type replenishmentService struct {
	replenishmentRepo repositories.ReplenishmentRepository
	productRepo       repositories.ProductRepository
	supplierRepo      repositories.SupplierRepository
	profileRepo       repositories.ProfileRepository
	cacheSvc          caching.CacheService
	webhookSvc        WebhookService
}

func NewReplenishmentService(
	replenishmentRepo repositories.ReplenishmentRepository,
	productRepo repositories.ProductRepository,
	supplierRepo repositories.SupplierRepository,
	profileRepo repositories.ProfileRepository,
	cacheSvc caching.CacheService,
	webhookSvc WebhookService,
) ReplenishmentService {
	return &replenishmentService{
		replenishmentRepo: replenishmentRepo,
		productRepo:       productRepo,
		supplierRepo:      supplierRepo,
		profileRepo:       profileRepo,
		cacheSvc:          cacheSvc,
		webhookSvc:        webhookSvc,
	}
}

func (s *replenishmentService) Create(ctx context.Context, profileID, userID, productID, supplierID uuid.UUID, quantity int) (*models.ReplenishmentRequest, error) {
	request, productName, err := s.createOne(ctx, profileID, userID, productID, supplierID, quantity)
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, profileID, userID, ReplenishmentEventSingle, []*ReplenishmentEventEntry{
		s.buildEntry(ctx, request, productName),
	})
	return request, nil
}

// CreateBatch issues one insert per item with no atomicity across items. A
// failure returns the requests created so far alongside the error; already
// persisted items stay persisted.
func (s *replenishmentService) CreateBatch(ctx context.Context, profileID, userID, supplierID uuid.UUID, items []models.ReplenishmentItem) ([]*models.ReplenishmentRequest, error) {
	if len(items) == 0 {
		return nil, errors.New("at least one item is required")
	}

	var created []*models.ReplenishmentRequest
	var entries []*ReplenishmentEventEntry

	for i, item := range items {
		request, productName, err := s.createOne(ctx, profileID, userID, item.ProductID, supplierID, item.Quantity)
		if err != nil {
			// Notify for whatever made it through before failing
			if len(entries) > 0 {
				s.notifyCreated(ctx, profileID, userID, ReplenishmentEventMulti, entries)
			}
			return created, fmt.Errorf("item %d: %w", i+1, err)
		}
		created = append(created, request)
		entries = append(entries, s.buildEntry(ctx, request, productName))
	}

	s.notifyCreated(ctx, profileID, userID, ReplenishmentEventMulti, entries)
	return created, nil
}

func (s *replenishmentService) createOne(ctx context.Context, profileID, userID, productID, supplierID uuid.UUID, quantity int) (*models.ReplenishmentRequest, string, error) {
	if err := common.ValidatePositiveInteger(quantity, "quantity", 1000000); err != nil {
		return nil, "", err
	}

	product, err := s.productRepo.GetByID(ctx, profileID, productID)
	if err != nil {
		return nil, "", fmt.Errorf("product lookup failed: %w", err)
	}

	request := &models.ReplenishmentRequest{
		ID:          uuid.New(),
		ProfileID:   profileID,
		ProductID:   productID,
		SupplierID:  supplierID,
		Quantity:    quantity,
		Status:      models.ReplenishmentStatusPending,
		RequestedBy: userID,
		RequestedAt: time.Now(),
	}

	if err := s.replenishmentRepo.Create(ctx, request); err != nil {
		return nil, "", err
	}
	return request, product.Name, nil
}

func (s *replenishmentService) List(ctx context.Context, profileID uuid.UUID) ([]*models.ReplenishmentRequest, error) {
	return s.replenishmentRepo.List(ctx, profileID)
}

// Approve transitions a pending request and increments the product's stock by
// the requested quantity. The transition goes straight to completed: both
// approved_at and completed_at are stamped and the request never rests in an
// intermediate approved state. The stock increment and the status update are
// two independent statements; there is no transaction spanning them.
func (s *replenishmentService) Approve(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error) {
	request, err := s.replenishmentRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ReplenishmentStatusPending {
		return nil, ErrNotPending
	}

	if _, err := s.productRepo.IncrementStock(ctx, profileID, request.ProductID, request.Quantity); err != nil {
		return nil, fmt.Errorf("stock update failed: %w", err)
	}

	now := time.Now()
	if err := s.replenishmentRepo.UpdateStatus(ctx, profileID, id, models.ReplenishmentStatusCompleted, &now, &now, notes); err != nil {
		return nil, err
	}

	if err := s.cacheSvc.InvalidateProfileCache(ctx, profileID); err != nil {
		log.Printf("Failed to invalidate cache for profile %s: %v", profileID.String(), err)
	}

	request.Status = models.ReplenishmentStatusCompleted
	request.ApprovedAt = &now
	request.CompletedAt = &now
	if notes != nil {
		request.Notes = notes
	}
	return request, nil
}

func (s *replenishmentService) Reject(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error) {
	request, err := s.replenishmentRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ReplenishmentStatusPending {
		return nil, ErrNotPending
	}

	if err := s.replenishmentRepo.UpdateStatus(ctx, profileID, id, models.ReplenishmentStatusRejected, nil, nil, notes); err != nil {
		return nil, err
	}

	request.Status = models.ReplenishmentStatusRejected
	if notes != nil {
		request.Notes = notes
	}
	return request, nil
}

// Complete marks a pending request completed without touching stock. Only the
// approval path increments stock.
func (s *replenishmentService) Complete(ctx context.Context, profileID, id uuid.UUID, notes *string) (*models.ReplenishmentRequest, error) {
	request, err := s.replenishmentRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ReplenishmentStatusPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	if err := s.replenishmentRepo.UpdateStatus(ctx, profileID, id, models.ReplenishmentStatusCompleted, nil, &now, notes); err != nil {
		return nil, err
	}

	request.Status = models.ReplenishmentStatusCompleted
	request.CompletedAt = &now
	if notes != nil {
		request.Notes = notes
	}
	return request, nil
}

// Delete removes a request in any state. A completed request's stock effect
// is not reversed.
func (s *replenishmentService) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	return s.replenishmentRepo.Delete(ctx, profileID, id)
}

func (s *replenishmentService) buildEntry(ctx context.Context, request *models.ReplenishmentRequest, productName string) *ReplenishmentEventEntry {
	entry := &ReplenishmentEventEntry{
		ReplenishmentRequest: request,
		ProductName:          productName,
	}
	if supplier, err := s.supplierRepo.GetByID(ctx, request.ProfileID, request.SupplierID); err == nil {
		entry.SupplierPhone = common.SafeString(supplier.Phone)
	}
	return entry
}

// notifyCreated relays the creation event to the automation webhook. Failures
// are logged and swallowed; the user never sees them.
func (s *replenishmentService) notifyCreated(ctx context.Context, profileID, userID uuid.UUID, eventType string, entries []*ReplenishmentEventEntry) {
	if !s.webhookSvc.Enabled() || len(entries) == 0 {
		return
	}

	event := &ReplenishmentCreatedEvent{
		Type:       eventType,
		AdminPhone: s.adminPhone(ctx, profileID),
	}
	if eventType == ReplenishmentEventSingle {
		event.Request = entries[0]
	} else {
		event.Requests = entries
	}
	if profile, err := s.profileRepo.GetByID(ctx, userID, profileID); err == nil {
		event.Profile = profile
	}

	if err := s.webhookSvc.NotifyReplenishmentCreated(ctx, event); err != nil {
		log.Printf("Failed to notify automation webhook: %v", err)
	}
}

// adminPhone looks up the phone of the profile's "default" supplier, which
// holds the account owner's contact details.
func (s *replenishmentService) adminPhone(ctx context.Context, profileID uuid.UUID) string {
	supplier, err := s.supplierRepo.GetByName(ctx, profileID, models.DefaultSupplierName)
	if err != nil {
		return ""
	}
	return common.SafeString(supplier.Phone)
}
