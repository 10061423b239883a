package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/utils"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("triage")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&schema.Patient{},
		&schema.Hospital{},
		&schema.Doctor{},
		&schema.Medic{},
		&schema.NGO{},
	).Error; err != nil {
		panic(err)
	}

	if err := seedDirectory(db, viper.GetString("seed.password")); err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}

// seedDirectory loads the default care providers. Existing rows are kept so
// the command can run repeatedly.
func seedDirectory(db *gorm.DB, password string) error {
	if password == "" {
		return fmt.Errorf("empty seed password")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Println("initialize hospitals")
	for _, h := range schema.DefaultHospitals {
		h := h
		if err := db.Where(schema.Hospital{ID: h.ID}).FirstOrCreate(&h).Error; err != nil {
			return err
		}
	}

	fmt.Println("initialize doctors")
	for _, d := range schema.DefaultDoctors {
		d := d
		d.PasswordHash = hash
		if err := db.Where(schema.Doctor{ID: d.ID}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}

	fmt.Println("initialize ambulance partners")
	for _, n := range schema.DefaultNGOs {
		n := n
		if err := db.Where(schema.NGO{ID: n.ID}).FirstOrCreate(&n).Error; err != nil {
			return err
		}
	}

	fmt.Println("initialize medics")
	for _, m := range schema.DefaultMedics {
		m := m
		m.PasswordHash = hash
		if err := db.Where(schema.Medic{ID: m.ID}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}

	return nil
}
