package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mismatched with the driver's native types on purpose: everything above
// this package sees plain hex strings and these two sentinels.
var (
	ErrInvalidID = errors.New("invalid document id")
	ErrNotFound  = errors.New("document not found")
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store owns the shared client. It is opened once at startup and is safe
// for concurrent use per the driver's guarantees.
type Store struct {
	client *mongodrv.Client
	db     *mongodrv.Database
}

func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) DatabaseName() string { return s.db.Name() }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "list collections")
	}
	return names, nil
}

func (s *Store) insert(ctx context.Context, coll string, doc any) (string, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrapf(err, "insert into %s", coll)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("insert into %s: unexpected id type %T", coll, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *Store) find(ctx context.Context, coll string, filter bson.M, limit int64, out any) error {
	cur, err := s.db.Collection(coll).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return errors.Wrapf(err, "find in %s", coll)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return errors.Wrapf(err, "decode from %s", coll)
	}
	return nil
}

func (s *Store) findOneByID(ctx context.Context, coll, id string, out any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(ErrInvalidID, "%q", id)
	}
	err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "find %s by id", coll)
	}
	return nil
}

func (s *Store) count(ctx context.Context, coll string, filter bson.M) (int64, error) {
	n, err := s.db.Collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "count %s", coll)
	}
	return n, nil
}
