package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexMedicalHistoryCollection())
	panicIfError(m.IndexTriageReportCollection())
	panicIfError(m.IndexDispatchCollection())
	panicIfError(m.IndexAuditEventCollection())
}

func (m *MongoDBIndexer) IndexMedicalHistoryCollection() error {
	return m.createIndex(MedicalHistoryCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "patient_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexTriageReportCollection() error {
	if err := m.createIndex(TriageReportCollection, mongo.IndexModel{
		Keys: bson.M{
			"ts": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(TriageReportCollection, mongo.IndexModel{
		Keys: bson.M{
			"severity.severity_level": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexDispatchCollection() error {
	return m.createIndex(DispatchCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "arrived", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAuditEventCollection() error {
	return m.createIndex(AuditEventCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}
