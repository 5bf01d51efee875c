package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogotex/ownership/internal/config"
	"github.com/gogotex/ownership/internal/person"
	"github.com/gogotex/ownership/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Log.Level)

	if err := run(os.Stdout); err != nil {
		logger.Fatalf("%v", err)
	}
}

// run builds a Person, clones it and writes both renderings on one line.
func run(w io.Writer) error {
	p1 := person.NewPerson("Caio", person.NewDocument("12345678910"))
	p2 := p1.Clone()
	logger.Debugf("cloned person %q", p1.Name)

	if _, err := fmt.Fprintf(w, "%s %s\n", p1.String(), p2.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
