package rfid

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go-jobboard-backend/pkg/logger"
)

// Generator periodically records a random catalogue tag in its stores.
type Generator struct {
	catalog  []CatalogEntry
	source   string
	interval time.Duration
	stores   []Store
	pick     func(n int) int
	now      func() time.Time
}

type Option func(*Generator)

// WithCatalog replaces DefaultCatalog.
func WithCatalog(c []CatalogEntry) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithPicker overrides the random index source (tests).
func WithPicker(pick func(n int) int) Option {
	return func(g *Generator) { g.pick = pick }
}

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(source string, interval time.Duration, stores []Store, opts ...Option) *Generator {
	g := &Generator{
		catalog:  DefaultCatalog,
		source:   source,
		interval: interval,
		stores:   stores,
		pick:     rand.IntN,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Tick generates one reading and writes it to every store. A failing store
// does not prevent the others from being updated.
func (g *Generator) Tick(ctx context.Context) (Tag, error) {
	if len(g.catalog) == 0 {
		return Tag{}, errors.New("rfid: empty catalog")
	}
	entry := g.catalog[g.pick(len(g.catalog))]
	tag := Tag{
		Type:      entry.Type,
		Frequency: entry.Frequency,
		UID:       entry.UID,
		Source:    g.source,
		Timestamp: g.now().UTC().Truncate(time.Millisecond),
	}

	var errs []error
	for _, s := range g.stores {
		if err := s.Save(ctx, tag); err != nil {
			errs = append(errs, err)
		}
	}
	return tag, errors.Join(errs...)
}

// Run ticks every interval until ctx is cancelled. The first reading is
// produced after one full interval, so /rfid-scan answers 404 until then.
func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tag, err := g.Tick(ctx)
			if err != nil {
				logger.Log.Warn("RFID store update failed", "error", err)
				continue
			}
			logger.Log.Debug("RFID tag generated", "uid", tag.UID, "type", tag.Type)
		}
	}
}
