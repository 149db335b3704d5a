package tempeval

import (
	"log/slog"

	"github.com/jamesainslie/go-tempeval/action"
	"github.com/jamesainslie/go-tempeval/interval"
)

// Option configures a Scorer.
type Option func(*config)

type config struct {
	threshold     float64
	categories    []action.Category
	unknownBucket bool
	keepGoing     bool
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		threshold:  interval.DefaultThreshold,
		categories: action.Defaults(),
		logger:     slog.Default(),
	}
}

// WithThreshold sets the IoU match threshold (default: 0.3).
func WithThreshold(t float64) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// WithCategories sets the ordered category list used for classification
// and report order (default: action.Defaults()).
func WithCategories(categories ...action.Category) Option {
	return func(c *config) {
		if len(categories) > 0 {
			c.categories = categories
		}
	}
}

// WithUnknownBucket lists records with no recognised category under
// action.Unknown in per-category breakdowns. Their counts always contribute
// to the totals.
func WithUnknownBucket(enabled bool) Option {
	return func(c *config) {
		c.unknownBucket = enabled
	}
}

// WithKeepGoing makes ScoreFiles skip files that fail to load instead of
// aborting on the first one.
func WithKeepGoing(enabled bool) Option {
	return func(c *config) {
		c.keepGoing = enabled
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
