// Package availability exposes fetch-and-classify and roster-preparse
// operations over the roster scraping core to external callers.
package availability

import (
	"context"
	"time"
	"lineupwatch-backend/lib/scrapers/roster"
	"lineupwatch-backend/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/availability")

// Config is read from availability.json5. Marker terms, aliases and the
// team-URL table are data, not code.
type Config struct {
	// Teams maps a team id to its roster page URL.
	Teams map[string]string `json:"teams"`
	// Aliases maps source-system athlete spellings to the spelling used
	// by the roster pages.
	Aliases map[string]string `json:"aliases"`
	// Markers are the injury/suspension terms matched against section
	// text. Empty means roster.DefaultMarkers.
	Markers []string `json:"markers"`
	// Filters lists the active filter variants ("startelf", "gesetzt").
	// Empty means both.
	Filters []string `json:"filters"`

	HtmlCacheMinutes    int `json:"html_cache_minutes"`
	VerdictCacheMinutes int `json:"verdict_cache_minutes"`
}

// Service wires the page cache, verdict cache, fetch client and parser
// together. Both caches are constructed here and passed by reference,
// there are no package-level singletons so tests can build isolated
// instances.
type Service struct {
	teams    map[string]string
	pages    *roster.PageCache
	verdicts *roster.VerdictCache
	client   *roster.Client
	parser   roster.Parser
	filters  []roster.Filter
}

func NewService(cfg Config) Service {
	pages := roster.NewPageCache(time.Duration(cfg.HtmlCacheMinutes) * time.Minute)
	verdicts := roster.NewVerdictCache(time.Duration(cfg.VerdictCacheMinutes) * time.Minute)

	names := roster.NewNameMapper(cfg.Aliases)
	classifier := roster.NewClassifier(cfg.Markers)
	parser := roster.NewParser(names, classifier, verdicts)

	var filters []roster.Filter
	for _, kind := range cfg.Filters {
		f := roster.FilterByKind(roster.FilterKind(kind))
		if f.Kind != roster.FilterNone {
			filters = append(filters, f)
		}
	}
	if len(filters) == 0 {
		filters = []roster.Filter{
			roster.StartingElevenFilter(),
			roster.RotationFilter(),
		}
	}

	teams := make(map[string]string, len(cfg.Teams))
	for id, url := range cfg.Teams {
		teams[textutil.Normalize(id)] = url
	}

	return Service{
		teams:    teams,
		pages:    pages,
		verdicts: verdicts,
		client:   roster.NewClient(pages),
		parser:   parser,
		filters:  filters,
	}
}

// ResolveRosterURL looks up the roster page URL for a team id.
func (s Service) ResolveRosterURL(teamID string) (string, bool) {
	url, ok := s.teams[textutil.Normalize(teamID)]
	return url, ok
}

// Filters returns the service's active filter variants.
func (s Service) Filters() []roster.Filter {
	return s.filters
}

// FetchAndClassify returns the availability verdict for one athlete on
// one roster page. The verdict cache is consulted with allowStale=true,
// an expired-but-present verdict beats a synchronous re-parse. On a
// miss it falls through to fetch (page-cache-backed) and a single-name
// parse, writing the result through to the verdict cache.
func (s Service) FetchAndClassify(ctx context.Context, url, name string, kind roster.FilterKind) (roster.Verdict, error) {
	ctx, span := tracer.Start(ctx, "FetchAndClassify")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", url),
		attribute.String("name", name),
		attribute.String("filter", string(kind)),
	)

	// unknown kinds degrade to "none" so the cache never carries an
	// undeclared filter component
	filter := roster.FilterByKind(kind)
	key := s.parser.Key(url, name, filter.Kind)
	if verdict, ok := s.verdicts.Get(key, true); ok {
		span.AddEvent("verdict cache hit")
		return verdict, nil
	}

	html, err := s.client.Fetch(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch roster page")
		return roster.Verdict{}, err
	}

	verdict := s.parser.ParseOne(ctx, html, name, filter)
	s.verdicts.Put(key, verdict, time.Now())
	return verdict, nil
}

// PreparseRoster populates the verdict cache for every roster entry on
// the page under every given filter variant plus the implicit none.
// Returns the number of cache entries written.
func (s Service) PreparseRoster(ctx context.Context, url, html string, filters []roster.Filter) int {
	ctx, span := tracer.Start(ctx, "PreparseRoster")
	defer span.End()

	return s.parser.ParseAll(ctx, url, html, filters)
}

// RefreshRoster fetches the page (a still-fresh page cache entry is an
// acceptable hit) and preparses it with the service's configured
// filters.
func (s Service) RefreshRoster(ctx context.Context, url string) (int, error) {
	ctx, span := tracer.Start(ctx, "RefreshRoster")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	html, err := s.client.Fetch(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not fetch roster page")
		return 0, err
	}
	return s.parser.ParseAll(ctx, url, html, s.filters), nil
}

// SuggestSpelling returns the roster name closest to the requested one,
// for diagnostics after a not-in-squad verdict.
func (s Service) SuggestSpelling(ctx context.Context, url, name string) (string, float64, error) {
	html, err := s.client.Fetch(ctx, url)
	if err != nil {
		return "", 0, err
	}
	candidates := s.parser.RosterNames(html)
	suggestion, score := s.parser.Names.Closest(name, candidates)
	return suggestion, score, nil
}

// Cache introspection for operational monitoring.

func (s Service) PageCacheSize() int {
	return s.pages.Size()
}

func (s Service) PageCacheKeys() []string {
	return s.pages.Keys()
}

func (s Service) VerdictCacheSize() int {
	return s.verdicts.Size()
}

func (s Service) VerdictCacheKeys() []roster.VerdictKey {
	return s.verdicts.Keys()
}
