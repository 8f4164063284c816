package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore adapters' contracts.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	product.ID = fmt.Sprintf("product-%d", r.seq)
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product not found", nil)
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Color != "" && product.Color != filter.Color {
			continue
		}
		if filter.Price != nil && (product.Price < filter.Price.Min || product.Price > filter.Price.Max) {
			continue
		}
		clone := *product
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Product{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product not found", nil)
	}
	product.UpdatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product not found", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(query)
	var matched []*entity.Product
	for _, product := range r.products {
		if strings.Contains(strings.ToLower(product.Name), needle) ||
			strings.Contains(strings.ToLower(product.Description), needle) {
			clone := *product
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) ListTrending(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if product.IsTrending {
			clone := *product
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) ListRelated(ctx context.Context, source *entity.Product, limit int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if product.ID == source.ID {
			continue
		}
		if product.Category == source.Category {
			clone := *product
			matched = append(matched, &clone)
		}
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched, nil
}

type fakeReviewRepo struct {
	mu        sync.Mutex
	reviews   []*entity.Review
	seq       int
	deleteErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = fmt.Sprintf("review-%d", r.seq)
	review.CreatedAt = time.Now()
	clone := *review
	r.reviews = append(r.reviews, &clone)
	return nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			clone := *review
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *fakeReviewRepo) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var kept []*entity.Review
	deleted := 0
	for _, review := range r.reviews {
		if review.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, review)
	}
	r.reviews = kept
	return deleted, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User not found", nil)
	}
	clone := *user
	return &clone, nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items map[string]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*entity.CartItem{}}
}

func (r *fakeCartRepo) AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := item.UserID + "_" + item.ProductID
	if existing, ok := r.items[id]; ok {
		existing.Quantity += item.Quantity
		existing.UpdatedAt = time.Now()
		clone := *existing
		return &clone, nil
	}
	item.ID = id
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	r.items[id] = &clone
	result := clone
	return &result, nil
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id string) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Cart item not found", nil)
	}
	clone := *item
	return &clone, nil
}

func (r *fakeCartRepo) Update(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.NotFound("Cart item not found", nil)
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Cart item not found", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*entity.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[string]*entity.Coupon{}}
}

func (r *fakeCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coupons[coupon.Code]; ok {
		return errors.Conflict("Coupon code already exists")
	}
	coupon.ID = coupon.Code
	coupon.CreatedAt = time.Now()
	clone := *coupon
	r.coupons[coupon.Code] = &clone
	return nil
}

func (r *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[code]
	if !ok {
		return nil, errors.NotFound("Coupon not found", nil)
	}
	clone := *coupon
	return &clone, nil
}

type fakeDealRepo struct {
	mu   sync.Mutex
	deal *entity.Deal
	sets int
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{}
}

func (r *fakeDealRepo) Get(ctx context.Context) (*entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deal == nil {
		return nil, nil
	}
	clone := *r.deal
	return &clone, nil
}

func (r *fakeDealRepo) Set(ctx context.Context, deal *entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	deal.UpdatedAt = time.Now()
	clone := *deal
	r.deal = &clone
	r.sets++
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	order  []string
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	clone := *order
	r.orders[order.ID] = &clone
	r.order = append(r.order, order.ID)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order not found", nil)
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Order
	for i := len(r.order) - 1; i >= 0; i-- {
		order := r.orders[r.order[i]]
		if order != nil && order.Email == email {
			clone := *order
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *fakeOrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.Order, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if order := r.orders[r.order[i]]; order != nil {
			clone := *order
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order not found", nil)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return errors.NotFound("Order not found", nil)
	}
	delete(r.orders, id)
	return nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads [][]byte
	url     string
	err     error
}

func (u *fakeUploader) UploadImage(ctx context.Context, data []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, data)
	if u.url != "" {
		return u.url, nil
	}
	return fmt.Sprintf("https://storage.example.com/img-%d", len(u.uploads)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}
