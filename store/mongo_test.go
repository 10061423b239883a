package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/utils"
)

type MongoStoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	sealer       *utils.Sealer
	store        MongoStore
}

func NewMongoStoreTestSuite(connURI, dbName string) *MongoStoreTestSuite {
	return &MongoStoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoStoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	sealer, err := utils.NewSealer("test-history-key")
	if err != nil {
		s.T().Fatal(err)
	}
	s.sealer = sealer
	s.store = NewMongoStore(s.mongoClient, s.testDBName, s.sealer)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *MongoStoreTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.DispatchCollection).InsertMany(ctx, []interface{}{
		schema.DispatchRecord{
			ID:       "dispatch-open",
			Symptoms: []string{"chest pain"},
			Priority: 5,
			Ambulance: schema.AmbulanceAssignment{
				Status: schema.AmbulanceDispatched,
				NGOID:  1,
			},
			Timestamp: 1000,
		},
		schema.DispatchRecord{
			ID:        "dispatch-arrived",
			Priority:  3,
			Arrived:   true,
			ArrivedAt: 2000,
			Timestamp: 1500,
		},
	}); err != nil {
		return err
	}

	// a record sealed with another key
	foreign, _ := utils.NewSealer("another-key")
	payload, _ := foreign.Seal([]byte(`{"ts":5,"data":{"note":"hidden"}}`))
	if _, err := s.testDatabase.Collection(schema.MedicalHistoryCollection).InsertOne(ctx, schema.SealedRecord{
		PatientID: "patient-1",
		Payload:   payload,
		Timestamp: 5,
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *MongoStoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MongoStoreTestSuite) TearDownSuite() {
	s.store.Close()
}

func (s *MongoStoreTestSuite) TestPing() {
	s.NoError(s.store.Ping())
}

// TestMedicalRecords tests records are sealed at rest and listed newest first
func (s *MongoStoreTestSuite) TestMedicalRecords() {
	for i, note := range []string{"first visit", "second visit", "third visit"} {
		err := s.store.AddMedicalRecord("patient-1", schema.MedicalRecord{
			Timestamp: int64(10 + i),
			Data:      map[string]interface{}{"note": note},
		})
		s.NoError(err)
	}

	var raw bson.M
	err := s.testDatabase.Collection(schema.MedicalHistoryCollection).FindOne(context.Background(), bson.M{
		"patient_id": "patient-1",
		"ts":         10,
	}).Decode(&raw)
	s.NoError(err)
	s.NotContains(raw, "data")

	records, err := s.store.GetMedicalRecords("patient-1", time.Now().Unix(), 10)
	s.NoError(err)
	s.Len(records, 3, "the foreign record is not skipped")
	s.Equal("third visit", records[0].Data["note"])
	s.Equal("first visit", records[2].Data["note"])

	records, err = s.store.GetMedicalRecords("patient-1", 12, 1)
	s.NoError(err)
	s.Len(records, 1)
	s.Equal(int64(11), records[0].Timestamp)

	records, err = s.store.GetMedicalRecords("patient-2", time.Now().Unix(), 10)
	s.NoError(err)
	s.Empty(records)
}

func (s *MongoStoreTestSuite) TestSaveTriageReport() {
	err := s.store.SaveTriageReport(schema.TriageReport{
		ID:              "report-1",
		NormalizedInput: "chest pain",
		Report:          schema.SymptomReport{Symptoms: []string{"chest pain"}},
		Severity:        schema.SeverityResult{Score: 25, Level: schema.SeverityMild},
		Timestamp:       100,
	})
	s.NoError(err)

	count, err := s.testDatabase.Collection(schema.TriageReportCollection).CountDocuments(context.Background(), bson.M{
		"severity.severity_level": "mild",
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *MongoStoreTestSuite) TestSaveAndGetDispatch() {
	record := schema.DispatchRecord{
		ID:       "dispatch-new",
		Symptoms: []string{"fracture"},
		Priority: 2,
		Doctor: schema.DoctorAssignment{
			ID:          6,
			ConsultType: schema.ConsultEmergency,
			DoctorName:  "Dr. Prakash N",
		},
		Ambulance: schema.AmbulanceAssignment{Status: schema.AmbulanceNotNeeded},
		Timestamp: 300,
	}
	s.NoError(s.store.SaveDispatch(record))

	got, err := s.store.GetDispatch("dispatch-new")
	s.NoError(err)
	s.Equal(record, *got)

	_, err = s.store.GetDispatch("missing")
	s.Equal(ErrDispatchNotFound, err)
}

func (s *MongoStoreTestSuite) TestReassignAndArrive() {
	err := s.store.ReassignAmbulance("dispatch-open", 1, schema.AmbulanceAssignment{
		Status: schema.AmbulanceDispatched,
		NGOID:  2,
	})
	s.NoError(err)

	got, err := s.store.GetDispatch("dispatch-open")
	s.NoError(err)
	s.Equal(int64(2), got.Ambulance.NGOID)
	s.Equal(1, got.EscalationLevel)
	s.Equal([]int64{1}, got.PreviousNGOs)

	s.NoError(s.store.MarkAmbulanceArrived("dispatch-open", 4000))
	s.Equal(ErrDispatchNotFound, s.store.MarkAmbulanceArrived("dispatch-open", 5000))

	err = s.store.ReassignAmbulance("dispatch-open", 2, schema.AmbulanceAssignment{NGOID: 3})
	s.Equal(ErrDispatchNotFound, err, "an arrived dispatch is reassigned")

	s.Equal(ErrDispatchNotFound, s.store.MarkAmbulanceArrived("dispatch-arrived", 5000))
	s.Equal(ErrDispatchNotFound, s.store.MarkAmbulanceArrived("missing", 5000))
}

func (s *MongoStoreTestSuite) TestSaveAuditEvent() {
	s.NoError(s.store.SaveAuditEvent(schema.AuditEvent{
		UserID:    "patient-1",
		Action:    "diagnose",
		Status:    "mild",
		Timestamp: 10,
	}))

	count, err := s.testDatabase.Collection(schema.AuditEventCollection).CountDocuments(context.Background(), bson.M{
		"user_id": "patient-1",
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func TestMongoStoreTestSuite(t *testing.T) {
	conn := os.Getenv("TRIAGE_TEST_MONGO")
	if conn == "" {
		t.Skip("TRIAGE_TEST_MONGO is not set")
	}
	suite.Run(t, NewMongoStoreTestSuite(conn, "test-db"))
}
