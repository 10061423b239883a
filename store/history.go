package store

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ai4health/triage-api/schema"
)

var ErrSealerNotConfigured = errors.New("medical record sealer is not configured")

type MedicalHistory interface {
	AddMedicalRecord(patientID string, record schema.MedicalRecord) error
	GetMedicalRecords(patientID string, earlierThan, limit int64) ([]schema.MedicalRecord, error)
}

// AddMedicalRecord seals a record and appends it to the history of a patient
func (m *mongoDB) AddMedicalRecord(patientID string, record schema.MedicalRecord) error {
	if m.sealer == nil {
		return ErrSealerNotConfigured
	}

	plain, err := json.Marshal(record)
	if err != nil {
		return err
	}

	payload, err := m.sealer.Seal(plain)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err = m.collection(schema.MedicalHistoryCollection).InsertOne(ctx, schema.SealedRecord{
		PatientID: patientID,
		Payload:   payload,
		Timestamp: record.Timestamp,
	})
	return err
}

// GetMedicalRecords returns the newest records of a patient before a given
// timestamp. Records which can not be opened are skipped.
func (m *mongoDB) GetMedicalRecords(patientID string, earlierThan, limit int64) ([]schema.MedicalRecord, error) {
	if m.sealer == nil {
		return nil, ErrSealerNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query, options := historyQuery(patientID, earlierThan, limit)
	cur, err := m.collection(schema.MedicalHistoryCollection).Find(ctx, query, options)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]schema.MedicalRecord, 0)
	for cur.Next(ctx) {
		var sealed schema.SealedRecord
		if err := cur.Decode(&sealed); err != nil {
			return nil, err
		}

		plain, err := m.sealer.Open(sealed.Payload)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"patient_id": patientID,
				"ts":         sealed.Timestamp,
				"error":      err,
			}).Warn("skip unreadable medical record")
			continue
		}

		var r schema.MedicalRecord
		if err := json.Unmarshal(plain, &r); err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"patient_id": patientID,
				"error":      err,
			}).Warn("skip malformed medical record")
			continue
		}
		records = append(records, r)
	}

	return records, cur.Err()
}

func historyQuery(patientID string, earlierThan, limit int64) (bson.M, *options.FindOptions) {
	query := bson.M{
		"patient_id": patientID,
		"ts":         bson.M{"$lt": earlierThan},
	}
	options := options.Find()
	options = options.SetSort(bson.M{"ts": -1}).SetLimit(limit)
	return query, options
}
