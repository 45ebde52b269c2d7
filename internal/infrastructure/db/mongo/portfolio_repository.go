package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

const collectionPortfolios = "portfolios"

type PortfolioRepository struct {
	col *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{col: db.Collection(collectionPortfolios)}
}

// List retrieves all portfolios owned by userID, newest first.
func (r *PortfolioRepository) List(ctx context.Context, userID string) ([]*domain.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	portfolios := make([]domain.Portfolio, 0)
	if err := cursor.All(ctx, &portfolios); err != nil {
		return nil, err
	}

	out := make([]*domain.Portfolio, 0, len(portfolios))
	for i := range portfolios {
		out = append(out, &portfolios[i])
	}
	return out, nil
}

// FindByID retrieves a portfolio by its identifier.
func (r *PortfolioRepository) FindByID(ctx context.Context, id string) (*domain.Portfolio, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug retrieves a portfolio by its public slug.
func (r *PortfolioRepository) FindBySlug(ctx context.Context, slug string) (*domain.Portfolio, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *PortfolioRepository) findOne(ctx context.Context, filter bson.M) (*domain.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Portfolio
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPortfolioNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new portfolio document built from the draft.
func (r *PortfolioRepository) Create(ctx context.Context, draft ports.PortfolioDraft) (*domain.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	p := domain.Portfolio{
		ID:        uuid.NewString(),
		UserID:    draft.UserID,
		Title:     draft.Title,
		Summary:   draft.Summary,
		Slug:      draft.Slug,
		IsPublic:  draft.IsPublic,
		Theme:     draft.Theme,
		Sections:  draft.Sections,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Sections == nil {
		p.Sections = []domain.PortfolioSection{}
	}
	for i := range p.Sections {
		p.Sections[i].PortfolioID = p.ID
	}

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update and returns the stored document.
func (r *PortfolioRepository) Update(ctx context.Context, id string, upd domain.PortfolioUpdate) (*domain.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Summary != nil {
		set["summary"] = *upd.Summary
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.IsPublic != nil {
		set["is_public"] = *upd.IsPublic
	}
	if upd.Theme != nil {
		set["theme"] = *upd.Theme
	}
	if upd.Sections != nil {
		set["sections"] = *upd.Sections
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p domain.Portfolio
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPortfolioNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a portfolio document.
func (r *PortfolioRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPortfolioNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the portfolios collection. The
// slug index is unique so slug conflicts surface even under concurrent writes.
func (r *PortfolioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
