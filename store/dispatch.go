package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ai4health/triage-api/schema"
)

var ErrDispatchNotFound = fmt.Errorf("dispatch is either not found or already completed")

type DispatchOperator interface {
	SaveDispatch(record schema.DispatchRecord) error
	GetDispatch(id string) (*schema.DispatchRecord, error)
	MarkAmbulanceArrived(id string, arrivedAt int64) error
	ReassignAmbulance(id string, previousNGO int64, ambulance schema.AmbulanceAssignment) error
}

func (m *mongoDB) SaveDispatch(record schema.DispatchRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.DispatchCollection).InsertOne(ctx, record)
	return err
}

func (m *mongoDB) GetDispatch(id string) (*schema.DispatchRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var r schema.DispatchRecord
	if err := m.collection(schema.DispatchCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDispatchNotFound
		}
		return nil, err
	}
	return &r, nil
}

// MarkAmbulanceArrived closes a dispatch. Marking an arrived dispatch again
// is an error.
func (m *mongoDB) MarkAmbulanceArrived(id string, arrivedAt int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DispatchCollection).UpdateOne(ctx,
		bson.M{"_id": id, "arrived": false},
		bson.M{"$set": bson.M{"arrived": true, "arrived_at": arrivedAt}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrDispatchNotFound
	}
	return nil
}

// ReassignAmbulance replaces the ambulance of an open dispatch and raises
// its escalation level
func (m *mongoDB) ReassignAmbulance(id string, previousNGO int64, ambulance schema.AmbulanceAssignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DispatchCollection).UpdateOne(ctx,
		bson.M{"_id": id, "arrived": false},
		bson.M{
			"$set":      bson.M{"ambulance": ambulance},
			"$inc":      bson.M{"escalation_level": 1},
			"$addToSet": bson.M{"previous_ngos": previousNGO},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrDispatchNotFound
	}
	return nil
}
