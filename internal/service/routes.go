package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_distance_estimator.go -package=mocks rutakm/internal/service DistanceEstimator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"rutakm/internal/contextutil"
	"rutakm/internal/export"
	"rutakm/internal/routelog"
	"rutakm/internal/week"
)

// DistanceEstimator is the external distance collaborator as seen from
// the service layer: place names in, free text out. The service depends
// only on the reply containing *some* text, not on the collaborator's
// identity or transport.
type DistanceEstimator interface {
	// EstimateRoute returns the collaborator's raw reply for the distance
	// between origin and destination.
	EstimateRoute(ctx context.Context, origin, destination string) (string, error)
}

// RegisterRequest represents a route registration in the domain layer.
type RegisterRequest struct {
	Origin      string
	Destination string
	Incidence   string
}

// WeekOption is one entry of the history week selector.
type WeekOption struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// RecentWeeks is the number of weeks offered by the history selector.
const RecentWeeks = 8

// currentWeekLabel is the selector label for the running week.
const currentWeekLabel = "Esta semana"

// RouteService provides route registration and weekly history management.
type RouteService interface {
	// Register resolves the distance for a route (cache first, then the
	// external collaborator) and prepends a new record to the history.
	Register(ctx context.Context, req RegisterRequest) (routelog.Record, error)
	// History returns the records of the given week, newest first. An
	// empty weekKey means the current week.
	History(ctx context.Context, weekKey string) ([]routelog.Record, error)
	// Delete removes a record by id; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	// Weeks lists the most recent selectable weeks, current week first.
	Weeks(ctx context.Context) ([]WeekOption, error)
	// Export builds the xlsx workbook for the given week and returns the
	// file name and its contents.
	Export(ctx context.Context, weekKey string) (string, []byte, error)
}

// routeService implements RouteService.
type routeService struct {
	store     *routelog.Store
	estimator DistanceEstimator
	logger    *slog.Logger
	now       func() time.Time
}

// NewRouteService creates a RouteService over the given store and estimator.
func NewRouteService(store *routelog.Store, estimator DistanceEstimator) RouteService {
	return &routeService{
		store:     store,
		estimator: estimator,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// Register implements the registration flow: validate, check the cache,
// fall back to the collaborator, then prepend and persist a new record.
// A cache hit still produces a new record carrying the cached distance.
func (s *routeService) Register(ctx context.Context, req RegisterRequest) (routelog.Record, error) {
	logger := contextutil.LoggerFromContext(ctx)

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	incidence := strings.TrimSpace(req.Incidence)

	if origin == "" {
		return routelog.Record{}, &ValidationError{Field: "origin", Message: "cannot be empty"}
	}
	if destination == "" {
		return routelog.Record{}, &ValidationError{Field: "destination", Message: "cannot be empty"}
	}

	var distance string
	if cached := s.store.Find(origin, destination); cached != nil {
		// Cached distances are reused as-is, even if the real route may
		// have changed since: speed and cost win over freshness here.
		logger.InfoContext(ctx, "distance cache hit", "origin", origin, "destination", destination)
		distance = cached.Distance
	} else {
		reply, err := s.estimator.EstimateRoute(ctx, origin, destination)
		if err != nil {
			logger.ErrorContext(ctx, "distance estimation failed", "error", err)
			return routelog.Record{}, WrapError(ErrExternalService, "distance estimation failed")
		}

		distance, err = ExtractDistance(reply)
		if err != nil {
			logger.WarnContext(ctx, "unusable distance reply", "reply", reply, "error", err)
			return routelog.Record{}, err
		}
	}

	now := s.now()
	rec := routelog.Record{
		ID:          uuid.New().String(),
		Origin:      origin,
		Destination: destination,
		Distance:    distance,
		Date:        week.FormatDate(now),
		Day:         week.DayLabel(now),
		WeekKey:     week.Key(now),
		Incidence:   incidence,
	}

	s.store.InsertFront(rec)
	if err := s.store.Save(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to persist route history", "error", err)
		return routelog.Record{}, WrapError(err, "failed to persist route")
	}

	logger.InfoContext(ctx, "route registered",
		"id", rec.ID, "distance", rec.Distance, "week", rec.WeekKey, "day", rec.Day)
	return rec, nil
}

// History returns the records of the given week, newest first.
func (s *routeService) History(ctx context.Context, weekKey string) ([]routelog.Record, error) {
	if weekKey == "" {
		weekKey = week.Key(s.now())
	}
	return s.store.ByWeek(weekKey), nil
}

// Delete removes a record by id and persists the change. Unknown ids are
// a silent no-op.
func (s *routeService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.store.Remove(id) {
		logger.InfoContext(ctx, "delete of unknown route id", "id", id)
		return nil
	}
	if err := s.store.Save(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to persist route history", "error", err)
		return WrapError(err, "failed to persist delete")
	}

	logger.InfoContext(ctx, "route deleted", "id", id)
	return nil
}

// Weeks lists the RecentWeeks most recent week keys with display labels.
func (s *routeService) Weeks(ctx context.Context) ([]WeekOption, error) {
	keys := week.RecentKeys(s.now(), RecentWeeks)
	opts := make([]WeekOption, 0, len(keys))
	for i, k := range keys {
		label := currentWeekLabel
		if i > 0 {
			var err error
			label, err = week.RangeLabel(k)
			if err != nil {
				return nil, WrapError(err, "failed to label week")
			}
		}
		opts = append(opts, WeekOption{Key: k, Label: label, Current: i == 0})
	}
	return opts, nil
}

// Export builds the weekly workbook. A week without records is rejected
// with ErrNoRoutes and no file is produced.
func (s *routeService) Export(ctx context.Context, weekKey string) (string, []byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if weekKey == "" {
		weekKey = week.Key(s.now())
	}

	records := s.store.ByWeek(weekKey)
	if len(records) == 0 {
		return "", nil, WrapError(ErrNoRoutes, fmt.Sprintf("week %s", weekKey))
	}

	data, err := export.Build(records)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build export", "week", weekKey, "error", err)
		return "", nil, WrapError(err, "failed to build export")
	}

	logger.InfoContext(ctx, "weekly log exported", "week", weekKey, "records", len(records))
	return export.Filename(weekKey), data, nil
}
