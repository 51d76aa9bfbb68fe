package database

import (
	"context"
	"time"

	"safeher/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "safeher"

func InitMongoClient(sysConfigs *config.SystemConfigs) (*mongo.Client, *mongo.Database) {
	clientOptions := options.Client().ApplyURI(sysConfigs.Config.MongoUri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Msgf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal().Msgf("Could not ping MongoDB: %v", err)
	}

	log.Info().Str("database", databaseName).Msg("Connected to MongoDB")

	return client, client.Database(databaseName)
}
