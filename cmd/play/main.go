package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/mrsobakin/armada/internal/clock"
	"github.com/mrsobakin/armada/internal/config"
	"github.com/mrsobakin/armada/internal/game/field"
	"github.com/mrsobakin/armada/internal/session"
)

var errOutOfTime = errors.New("thinking time is over")

func newSession(layout string, seed uint64) (*session.Session, error) {
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := session.New(seed)

	if layout == "" {
		if err := s.Randomize(nil); err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(layout)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := s.Load(field.ParseShips(f)); err != nil {
			return nil, fmt.Errorf("%s: %w", layout, err)
		}
	}

	if err := s.Start(); err != nil {
		return nil, err
	}

	return s, nil
}

func main() {
	layout := flag.String("layout", "", "Fleet layout file; a random standard fleet if empty")
	seed := flag.Uint64("seed", 0, "Seed for the random fleet")
	budget := flag.Duration("budget", 0, "Thinking time; THINK_BUDGET if not set")
	flag.Parse()

	conf, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	if *budget <= 0 {
		*budget = conf.ThinkBudget
	}

	s, err := newSession(*layout, *seed)
	if err != nil {
		log.Fatalln("failed to set up the fleet:", err)
	}

	ctx, clk := clock.NewBudgetContext(context.Background(), *budget, errOutOfTime)
	defer clk.Close()

	log.Printf("fleet of %d ships is out there, you have %s to sink it\n", s.Stats().Ships, *budget)

	err = play(ctx, clk, s, os.Stdin, os.Stdout)
	if err != nil {
		log.Println(err)
	}

	printSummary(os.Stdout, s.Stats(), clk.Spent())
}
