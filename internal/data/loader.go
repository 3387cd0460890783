package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"ftlview/internal/log"
)

// DefaultSource is the document loaded when nothing else is configured.
const DefaultSource = "full-data.json"

// ErrLoadFailure is matched by every error the loader returns.
var ErrLoadFailure = errors.New("load failure")

// LoadError describes why the startup document could not be loaded
type LoadError struct {
	Source string
	Status int // HTTP status, 0 for file sources and transport errors
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to load %s: HTTP %d", e.Source, e.Status)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoadFailure) hold for every LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// Decode parses a full-data.json document. Only the sectors and
// blueprints fields are read. Values of the wrong type inside an
// otherwise valid document are dropped; invalid JSON is an error.
func Decode(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	ds := &Dataset{}
	if err := json.Unmarshal(raw, ds); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		log.Warn("dataset contains malformed values", "field", typeErr.Field, "value", typeErr.Value)
	}

	for i := range ds.Sectors {
		ds.Sectors[i].Events = compactEvents(ds.Sectors[i].Events)
	}
	return ds, nil
}

// compactEvents drops null entries of a sector's root event list.
func compactEvents(events []*EventNode) []*EventNode {
	out := events[:0]
	for _, e := range events {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Loader fetches and decodes the startup document.
type Loader struct {
	Client *http.Client
}

// NewLoader returns a loader using http.DefaultClient for URL sources.
func NewLoader() *Loader {
	return &Loader{Client: http.DefaultClient}
}

// Load reads source, which is either an http(s) URL or a file path.
// There is no retry and no timeout beyond ctx.
func (l *Loader) Load(ctx context.Context, source string) (*Dataset, error) {
	if source == "" {
		source = DefaultSource
	}
	defer log.Timed("load dataset", "source", source)()

	var (
		ds  *Dataset
		err error
	)
	if isURL(source) {
		ds, err = l.fetch(ctx, source)
	} else {
		ds, err = l.readFile(source)
	}
	if err != nil {
		log.Error("dataset load failed", "source", source, "error", err)
		return nil, err
	}

	log.Info("dataset loaded", "source", source, "sectors", len(ds.Sectors),
		"weapons", len(ds.Blueprints.Weapons), "crew", len(ds.Blueprints.Crew),
		"augments", len(ds.Blueprints.Augments), "drones", len(ds.Blueprints.Drones),
		"ships", len(ds.Blueprints.ShipBlueprints))
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: url, Status: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	ds, err := Decode(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}
	return ds, nil
}

func (l *Loader) readFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return ds, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
