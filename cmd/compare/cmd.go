package compare

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuannh982/linear-map/utils/collections"
	"github.com/tuannh982/linear-map/utils/logging"
)

type Config struct {
	Entries int
	Seed    int64
}

var (
	Cmd = &cobra.Command{
		Use:   "compare",
		Short: "Time a linear map against a hashed one",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := Run(config)
			return err
		},
	}

	config = Config{}
)

func init() {
	Cmd.Flags().IntVarP(&config.Entries, "entries", "n", 1000, "Number of distinct keys to insert")
	Cmd.Flags().Int64Var(&config.Seed, "seed", 1, "Seed used to shuffle the access order")
}

type Result struct {
	Impl   string
	Put    time.Duration
	Get    time.Duration
	Remove time.Duration
}

func Run(c Config) ([]Result, error) {
	if c.Entries <= 0 {
		return nil, errors.Errorf("entries must be positive, got %d", c.Entries)
	}
	logger := logging.ForCommand("compare")
	keys := make([]string, c.Entries)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	lookups := make([]string, len(keys))
	copy(lookups, keys)
	rand.New(rand.NewSource(c.Seed)).Shuffle(len(lookups), func(i, j int) {
		lookups[i], lookups[j] = lookups[j], lookups[i]
	})

	impls := []struct {
		name string
		m    collections.Map[string, int]
	}{
		{"linear", collections.NewLinearMapWithCapacity[string, int](c.Entries)},
		{"hash", collections.NewHashMap[string, int]()},
	}
	results := make([]Result, 0, len(impls))
	for _, impl := range impls {
		r, err := measure(impl.name, impl.m, keys, lookups)
		if err != nil {
			return nil, err
		}
		logger.WithFields(log.Fields{
			"impl":    r.Impl,
			"entries": humanize.Comma(int64(c.Entries)),
			"put":     r.Put,
			"get":     r.Get,
			"remove":  r.Remove,
		}).Info("comparison done")
		results = append(results, r)
	}
	return results, nil
}

func measure(name string, m collections.Map[string, int], keys, lookups []string) (Result, error) {
	r := Result{Impl: name}

	start := time.Now()
	for i, k := range keys {
		m.Put(k, i)
	}
	r.Put = time.Since(start)
	if m.Size() != len(keys) {
		return r, errors.Errorf("%s: expected %d entries after put, got %d", name, len(keys), m.Size())
	}

	start = time.Now()
	for _, k := range lookups {
		if _, ok := m.Get(k); !ok {
			return r, errors.Errorf("%s: key %q missing", name, k)
		}
	}
	r.Get = time.Since(start)

	start = time.Now()
	for _, k := range lookups {
		m.Remove(k)
	}
	r.Remove = time.Since(start)
	if !m.IsEmpty() {
		return r, errors.Errorf("%s: %d entries left after remove", name, m.Size())
	}
	return r, nil
}
