package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/ai4health/triage-api/api"
	"github.com/ai4health/triage-api/background"
	"github.com/ai4health/triage-api/external/cadence"
	"github.com/ai4health/triage-api/external/inference"
	"github.com/ai4health/triage-api/external/videoroom"
	"github.com/ai4health/triage-api/geo"
	"github.com/ai4health/triage-api/store"
	"github.com/ai4health/triage-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
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

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown triage api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Disconnecting mongo")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded symptom translations")

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("empty jwt secret")
	}

	sealer, err := utils.NewSealer(viper.GetString("history.seal_key"))
	if err != nil {
		log.Panic(err)
	}

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "triage_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	triageStore := store.NewTriageStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), sealer)

	// address resolution falls back to the coverage areas of the partners
	ngos, err := triageStore.ListNGOs()
	if err != nil {
		log.Panic(err)
	}
	resolvers := []geo.LocationResolver{}
	if key := viper.GetString("map.key"); key != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Panic(err)
		}
		resolvers = append(resolvers, geo.NewGeocodingLocationResolver(mapClient, viper.GetString("map.region")))
	}
	resolvers = append(resolvers, geo.NewAreaLocationResolver(ngos))

	cadenceService, err := cadence.NewServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		log.Panic(err)
	}
	workflowClient := cadence.NewWorkflowClient(cadenceService, viper.GetString("cadence.domain"), nil)

	inferenceClient := inference.New(viper.GetString("inference.endpoint"), &http.Client{
		Timeout: viper.GetDuration("inference.timeout"),
	})

	var videoRooms videoroom.Client
	if viper.GetString("twilio.account_sid") != "" {
		videoRooms, err = videoroom.New(videoroom.Config{
			Endpoint:     viper.GetString("twilio.endpoint"),
			AccountSID:   viper.GetString("twilio.account_sid"),
			APIKeySID:    viper.GetString("twilio.api_key"),
			APIKeySecret: viper.GetString("twilio.api_secret"),
			TokenTTL:     viper.GetDuration("twilio.token_ttl"),
		}, &http.Client{Timeout: 10 * time.Second})
		if err != nil {
			log.Panic(err)
		}
	} else {
		log.WithField("prefix", "init").Warn("video calls are disabled")
	}

	// Init http server
	server = api.NewServer(
		triageStore,
		mongoStore,
		[]byte(jwtSecret),
		inferenceClient,
		geo.NewMultipleLocationResolver(resolvers...),
		utils.NewEscalationTrigger(workflowClient),
		videoRooms,
		background.NewTaskAuditor(machineryServer))
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
