package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query

	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.Color != "" {
		query = query.Where("color", "==", filter.Color)
	}
	if filter.Price != nil {
		query = query.Where("price", ">=", filter.Price.Min).Where("price", "<=", filter.Price.Max)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}
	total := int64(len(allDocs))

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

// Search fetches the collection and filters in process. Firestore has no
// full-text search, and substring matching over lowered text keeps
// user-supplied queries from ever reaching a pattern engine.
func (r *firestoreProductRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to search products", err)
	}

	matched := []*entity.Product{}
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if matchesSearch(&product, query) {
			matched = append(matched, &product)
		}
	}

	return matched, nil
}

func (r *firestoreProductRepository) ListTrending(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection("products").Where("isTrending", "==", true).Documents(ctx)

	products := []*entity.Product{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list trending products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) ListRelated(ctx context.Context, source *entity.Product, limit int) ([]*entity.Product, error) {
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list related products", err)
	}

	related := []*entity.Product{}
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if product.ID == source.ID {
			continue
		}
		if isRelated(source, &product) {
			related = append(related, &product)
		}
		if limit > 0 && len(related) >= limit {
			break
		}
	}

	return related, nil
}
