package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

const (
	instructionsCollection = "emergency_instructions"
	helpRequestsCollection = "help_requests"
)

// Open connects to MongoDB and verifies connectivity with a ping.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// NewWithClient constructs a Mongo store over the named database. Documents
// are keyed by their business `id` field, not Mongo's `_id`, so records
// stay portable across store drivers.
func NewWithClient(client *mongo.Client, database string) store.Store {
	return &mongoStore{db: client.Database(database)}
}

type mongoStore struct{ db *mongo.Database }

func (s *mongoStore) Instructions() store.Instructions {
	return &instructions{col: s.db.Collection(instructionsCollection)}
}

func (s *mongoStore) HelpRequests() store.HelpRequests {
	return &helpRequests{col: s.db.Collection(helpRequestsCollection)}
}

// HealthPing implements health.HealthPinger.
func (s *mongoStore) HealthPing(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// --- Instructions ---

type instructions struct{ col *mongo.Collection }

func (i *instructions) Insert(ctx context.Context, ins *model.EmergencyInstruction) error {
	_, err := i.col.InsertOne(ctx, ins)
	return err
}

func (i *instructions) List(ctx context.Context) ([]*model.EmergencyInstruction, error) {
	return i.find(ctx, bson.M{})
}

func (i *instructions) ListByType(ctx context.Context, t model.EmergencyType) ([]*model.EmergencyInstruction, error) {
	return i.find(ctx, bson.M{"type": t})
}

func (i *instructions) Count(ctx context.Context) (int64, error) {
	return i.col.CountDocuments(ctx, bson.M{})
}

func (i *instructions) find(ctx context.Context, filter bson.M) ([]*model.EmergencyInstruction, error) {
	cur, err := i.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var res []*model.EmergencyInstruction
	if err := cur.All(ctx, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// --- HelpRequests ---

type helpRequests struct{ col *mongo.Collection }

func (h *helpRequests) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	if _, err := h.col.InsertOne(ctx, hr); err != nil {
		return nil, err
	}
	out := *hr
	return &out, nil
}

func (h *helpRequests) Get(ctx context.Context, id string) (*model.HelpRequest, error) {
	var hr model.HelpRequest
	err := h.col.FindOne(ctx, bson.M{"id": id}).Decode(&hr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hr, nil
}

func (h *helpRequests) ListByStatus(ctx context.Context, s model.HelpRequestStatus) ([]*model.HelpRequest, error) {
	cur, err := h.col.Find(ctx, bson.M{"status": s})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var res []*model.HelpRequest
	if err := cur.All(ctx, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateStatus is a single FindOneAndUpdate so the status and updated_at
// writes cannot interleave with a concurrent update.
func (h *helpRequests) UpdateStatus(ctx context.Context, id string, s model.HelpRequestStatus, updatedAt time.Time) (*model.HelpRequest, error) {
	var hr model.HelpRequest
	err := h.col.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": s, "updated_at": updatedAt}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&hr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hr, nil
}
