package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ai4health/triage-api/background"
	"github.com/ai4health/triage-api/background/escalation"
	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/external/cadence"
	"github.com/ai4health/triage-api/store"
	"github.com/ai4health/triage-api/utils"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	// Sentry
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("triage")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()

	sealer, err := utils.NewSealer(viper.GetString("history.seal_key"))
	if err != nil {
		logger.Panic("create record sealer with error", zap.Error(err))
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		logger.Panic("connect postgres with error", zap.Error(err))
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		sealer,
	)

	dispatcher := dispatch.New(store.NewTriageStore(ormDB),
		dispatch.WithSpeed(viper.GetFloat64("dispatch.ambulance_speed_kmh")))

	worker := escalation.NewEscalationWorker(
		viper.GetString("cadence.domain"),
		mongoStore,
		dispatcher,
		viper.GetDuration("dispatch.escalation_grace"),
		viper.GetInt("dispatch.max_escalations"),
	)
	worker.Register()
	cadenceService, err := cadence.NewServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		logger.Panic("connect cadence with error", zap.Error(err))
	}
	if err := worker.Start(cadenceService, logger); err != nil {
		logger.Panic("start escalation worker with error", zap.Error(err))
	}

	taskServer, err := machinery.NewServer(&machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "triage_background",
		ResultBackend: viper.GetString("redis.conn"),
	})
	if err != nil {
		logger.Panic("create machinery server with error", zap.Error(err))
	}

	manager := background.New(mongoStore, taskServer)
	if err := manager.RegisterTasks(); err != nil {
		logger.Panic("register background tasks with error", zap.Error(err))
	}

	// blocks until the process receives a termination signal
	if err := manager.Run(); err != nil {
		logger.Error("background worker stopped", zap.Error(err))
	}

	mongoStore.Close()
	ormDB.Close()
}
