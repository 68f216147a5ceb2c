// Command delegates runs the callback demonstration and prints its output to
// standard output. It takes no arguments.
package main

import (
	"log"
	"os"

	"github.com/yosang/delegates/demo"
	"github.com/yosang/delegates/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	log.SetPrefix(cfg.LogPrefix)
	log.SetFlags(0)
	if cfg.LogTimestamps {
		log.SetFlags(log.LstdFlags)
	}

	if err := demo.Run(os.Stdout); err != nil {
		log.Fatalf("demo failed (env=%s): %v", cfg.Env, err)
	}
}
