package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/maven-iuvs/core/api/config"
	"github.com/maven-iuvs/core/core/awsutil"
	"github.com/maven-iuvs/core/core/datafiles"
	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/iuvsfilename"
	"github.com/maven-iuvs/core/core/logger"
	"github.com/maven-iuvs/core/core/orbit"
)

var t0 = time.Now().UnixMilli()

var configPath string
var orbitNumber int
var segment string
var channel string
var showOutdated bool

func main() {
	flag.StringVar(&configPath, "config", "", "Path to the json config file")
	flag.IntVar(&orbitNumber, "orbit", 0, "Orbit number to list products for")
	flag.StringVar(&segment, "segment", "", "Observation segment, eg apoapse (optional)")
	flag.StringVar(&channel, "channel", "", "Detector channel, eg muv (optional)")
	flag.BoolVar(&showOutdated, "outdated", false, "List outdated product versions instead of the latest ones")

	flag.Parse()

	if len(configPath) <= 0 {
		log.Fatalf("Parameter: config was empty")
	}
	if orbitNumber <= 0 {
		log.Fatalf("Parameter: orbit must be a positive orbit number")
	}

	cfg, err := config.NewConfigFromFile(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	iLog := &logger.StdOutLogger{}
	iLog.SetLogLevel(cfg.LogLevel)

	fs, root, err := makeFileAccess(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	o := orbit.MakeOrbit(orbitNumber)
	pattern := iuvsfilename.MakePattern(segment, o.Number(), channel)

	iLog.Debugf("Searching %v under %v for %v", root, datafiles.BlockDirectory(cfg.EnvironmentName, o), pattern)

	var paths []string
	if showOutdated {
		paths, err = datafiles.FindOutdatedFilePaths(fs, root, pattern, iLog)
	} else {
		paths, err = datafiles.FindLatestFilePathsFromBlock(fs, root, cfg.EnvironmentName, o, pattern, iLog)
	}
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	for _, p := range paths {
		fmt.Println(p)
	}

	printFinishStats()
}

func makeFileAccess(cfg config.Config) (fileaccess.FileAccess, string, error) {
	if len(cfg.DataBucket) > 0 {
		sess, err := awsutil.GetSession()
		if err != nil {
			return nil, "", fmt.Errorf("failed to create AWS session: %v", err)
		}
		return awsutil.GetS3FileAccess(sess), cfg.DataBucket, nil
	}
	return &fileaccess.FSAccess{}, cfg.DataRoot, nil
}

func printFinishStats() {
	t1 := time.Now().UnixMilli()
	sec := (t1 - t0) / 1000
	fmt.Printf("Took: %v sec\n", sec)
}
