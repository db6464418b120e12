package drop

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Loader is the renderer side of the dispatcher
type Loader interface {
	LoadVolume(path string) error
	LoadSeries(paths []string) error
	LoadSurface(path string) error
	ClearVolume()
}

// Dispatcher routes payloads to the loader and tracks the placeholder
// ("teaser") state shown until real data is loaded.
type Dispatcher struct {
	loader      Loader
	hasTeaser   bool
	onFirstLoad func()
	log         zerolog.Logger
}

// NewDispatcher creates a dispatcher with the teaser present.
// onFirstLoad runs once, after the first successful load of any kind.
func NewDispatcher(loader Loader, onFirstLoad func(), log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		loader:      loader,
		hasTeaser:   true,
		onFirstLoad: onFirstLoad,
		log:         log,
	}
}

// HasTeaser reports whether the placeholder is still shown
func (d *Dispatcher) HasTeaser() bool {
	return d.hasTeaser
}

// Open classifies files from an open dialog and loads them
func (d *Dispatcher) Open(files []string) (Decision, error) {
	dec, err := Classify(files)
	if err != nil {
		return dec, err
	}
	return dec, d.Load(dec)
}

// Drop loads a drag and drop payload of URLs. Non-file URLs are skipped;
// if none remain nothing happens. A payload of several URLs always loads
// as a series, even when only one of them is a file.
func (d *Dispatcher) Drop(urls []string) (Decision, error) {
	files := FileURLs(urls)
	if len(urls) <= 1 {
		return d.Open(files)
	}

	dec := Decision{Kind: Series, Paths: make([]string, len(files))}
	for i, f := range files {
		dec.Paths[i] = Normalize(f)
	}
	return dec, d.Load(dec)
}

// Load runs the load operation for a classified payload
func (d *Dispatcher) Load(dec Decision) error {
	if len(dec.Paths) == 0 {
		return ErrEmptyPayload
	}

	id := uuid.New().String()[:8]
	log := d.log.With().Str("load", id).Str("kind", dec.Kind.String()).Logger()
	log.Info().Strs("paths", dec.Paths).Msg("loading")

	var err error
	switch dec.Kind {
	case Surface:
		if d.hasTeaser {
			d.loader.ClearVolume()
		}
		err = d.loader.LoadSurface(dec.Paths[0])
	case Series:
		err = d.loader.LoadSeries(dec.Paths)
	default:
		err = d.loader.LoadVolume(dec.Paths[0])
	}
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		return fmt.Errorf("failed to load %s: %w", dec.Kind, err)
	}

	log.Info().Msg("loaded")
	if d.hasTeaser {
		d.hasTeaser = false
		if d.onFirstLoad != nil {
			d.onFirstLoad()
		}
	}
	return nil
}
