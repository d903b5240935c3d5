package query

import (
	"fmt"

	"github.com/windowseq/windowseq/internal/options"
	"github.com/windowseq/windowseq/windowerr"
)

// Config holds the query engine's optional thresholds. The zero Config
// (via New with no options) means: unlimited divergence, best-only hits, no
// per-subject cap.
type Config struct {
	maxDivergence *int
	maxNumHits    *int
	perSubjectCap *int
}

// Option configures a Config; construct with WithMaxDivergence,
// WithMaxNumHits, or WithPerSubjectCap.
type Option = options.Option[*Config]

// WithMaxDivergence sets D, the absolute distance filter.
func WithMaxDivergence(d int) Option {
	return options.NoError(func(c *Config) { c.maxDivergence = &d })
}

// WithMaxNumHits sets K. K=1 (or never calling this option) selects the
// "best only" branch of the algorithm.
func WithMaxNumHits(k int) Option {
	return options.NoError(func(c *Config) { c.maxNumHits = &k })
}

// WithPerSubjectCap sets C, the per-subject run-length cap applied to the
// emission stream. It is only meaningful when K is unset or K >= 2.
func WithPerSubjectCap(c int) Option {
	return options.NoError(func(cfg *Config) { cfg.perSubjectCap = &c })
}

// New builds a validated Config from the given options.
//
// InvalidArguments fires if a per-subject cap is requested alongside an
// explicit max_num_hits below 2 (a cap makes no sense in the "best only"
// branch).
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.perSubjectCap != nil && cfg.maxNumHits != nil && *cfg.maxNumHits < 2 {
		return nil, fmt.Errorf("%w: per_subject_cap requires max_num_hits >= 2 or unset, found %d",
			windowerr.ErrInvalidArguments, *cfg.maxNumHits)
	}

	return cfg, nil
}

// bestOnly reports whether K selects the "best only" branch: absent or 1.
func (c *Config) bestOnly() bool {
	return c.maxNumHits == nil || *c.maxNumHits <= 1
}
