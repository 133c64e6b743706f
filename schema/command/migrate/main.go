package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/guardhq/patrol-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("patrol")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS patrol`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO patrol").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Zone{},
		&schema.Client{},
		&schema.ClientSite{},
		&schema.Checkpoint{},
		&schema.Guard{},
		&schema.CheckpointScan{},
		&schema.ScanTag{},
	).Error; err != nil {
		panic(err)
	}

	// scan tags are looked up by scan id from the live feed; no uniqueness,
	// duplicates from retried tagging are accepted
	if err := db.Model(schema.ScanTag{}).
		AddIndex("idx_scan_tags_checkpoint_scan_id", "checkpoint_scan_id").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
