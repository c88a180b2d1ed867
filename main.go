// main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/endpoint"
	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
)

func main() {
	seed := flag.Bool("seed", false, "create the example disorder if it does not exist")
	flag.Parse()

	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	if err := db.AutoMigrate(model.Models...); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if *seed {
		d, err := model.SeedExample(db)
		if err != nil {
			log.Fatalf("Error seeding example data: %v", err)
		}
		log.Printf("Example disorder available at /disorder/%s", d.Accession)
	}
	util.SetAccessLoggerDB(db)

	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		log.Printf("GeoIP disabled: %v", err)
	}
	defer util.CloseGeoIP()

	if _, err := config.ConnectRedis(cfg); err != nil {
		log.Printf("Redis unavailable, using local page cache only: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := endpoint.NewRouter(cfg, db, util.NewPageCache(cfg.PageTTL))

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
