package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/maven-iuvs/core/api/config"
	"github.com/maven-iuvs/core/core/ephemeris"
)

var configPath string
var timeArg string

func main() {
	flag.StringVar(&configPath, "config", "", "Path to the json config file")
	flag.StringVar(&timeArg, "time", "", "UTC time to compute geometry for, eg 2016-07-08T04:46:52Z")

	flag.Parse()

	if len(configPath) <= 0 {
		log.Fatalf("Parameter: config was empty")
	}
	if len(timeArg) <= 0 {
		log.Fatalf("Parameter: time was empty")
	}

	when, err := time.Parse(time.RFC3339, timeArg)
	if err != nil {
		log.Fatalf("Failed to parse time %q: %v", timeArg, err)
	}

	cfg, err := config.NewConfigFromFile(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := ephemeris.Furnish(cfg.SpicePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pool.Clear()

	dist, err := pool.MarsSunDistance(when)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ls, err := pool.SolarLongitude(when)
	if err != nil {
		log.Fatalf("%v", err)
	}

	lat, lon, err := pool.SubSolarPoint(when)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("Geometry for %v:\n", when.UTC().Format(time.RFC3339))
	fmt.Printf("  Mars-Sun distance: %.1f km\n", dist)
	fmt.Printf("  Solar longitude Ls: %.3f deg\n", ls)
	fmt.Printf("  Sub-solar point: lat %.3f deg, east lon %.3f deg\n", lat, lon)
}
