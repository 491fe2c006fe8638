package store_fx

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"clubcentral/internal/infra"
	"clubcentral/internal/repositories"
)

var Module = fx.Provide(
	provideDatabase,
	provideStore)

func provideDatabase(lc fx.Lifecycle) *mongo.Database {
	db := infra.InitMongo()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseMongo(db)
			return nil
		},
	})
	return db
}

func provideStore(db *mongo.Database) repositories.DocumentStore {
	return repositories.NewDocumentStore(db)
}
