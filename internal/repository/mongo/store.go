package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/config"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	collSpace       = "space"
	collSpaceUser   = "spaceuser"
	collFolder      = "folder"
	collContent     = "content"
	collContentType = "contenttype"
	collAsset       = "asset"
	collAssetFolder = "assetfolder"
)

// Store is the MongoDB backed repository.Store
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
}

// Connect opens a client and verifies connectivity
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return NewStore(client, cfg.Database, cfg.Transactions), nil
}

// NewStore wraps an existing client
func NewStore(client *mongo.Client, database string, transactions bool) *Store {
	return &Store{
		client:       client,
		db:           client.Database(database),
		transactions: transactions,
	}
}

func (s *Store) Spaces() repository.SpaceRepository {
	return &SpaceRepository{spaces: s.db.Collection(collSpace), members: s.db.Collection(collSpaceUser)}
}

func (s *Store) Folders() repository.FolderRepository {
	return &FolderRepository{coll: s.db.Collection(collFolder)}
}

func (s *Store) Contents() repository.ContentRepository {
	return &ContentRepository{coll: s.db.Collection(collContent)}
}

func (s *Store) ContentTypes() repository.ContentTypeRepository {
	return &ContentTypeRepository{coll: s.db.Collection(collContentType)}
}

func (s *Store) Assets() repository.AssetRepository {
	return &AssetRepository{coll: s.db.Collection(collAsset)}
}

func (s *Store) AssetFolders() repository.AssetFolderRepository {
	return &AssetFolderRepository{coll: s.db.Collection(collAssetFolder)}
}

// WithinTransaction runs fn in a session transaction when transactions are
// enabled. Standalone servers cannot run transactions, so fn then runs
// without one and earlier writes stay applied if a later one fails.
func (s *Store) WithinTransaction(ctx context.Context, fn repository.TxFn) error {
	if !s.transactions {
		return fn(ctx)
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup and uniqueness indexes used by the repositories
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collSpace: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collSpaceUser: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		collFolder: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "folderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collContent: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "contentId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "folderId", Value: 1}}},
		},
		collContentType: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "contentTypeId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collAsset: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "assetId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collAssetFolder: {
			{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "assetFolderId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		created, err := s.db.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		log.Debug().Str("collection", name).Strs("indexes", created).Msg("Indexes ensured")
	}

	return nil
}

// findAll decodes every document matching filter into out
func findAll(ctx context.Context, coll *mongo.Collection, filter any, out any, opts ...*options.FindOptions) error {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

// findOne decodes the first match into out and reports whether one was found
func findOne(ctx context.Context, coll *mongo.Collection, filter any, out any) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
