package mlcs

import (
	"context"

	cerrors "cloudeng.io/errors"
	"github.com/pdrpinto/mlcs/internal/tables"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// Segmentation selects what counts as one character of input.
type Segmentation = tables.Segmentation

const (
	// Runes compares Unicode scalar values. This is the default.
	Runes = tables.Runes
	// Graphemes compares extended grapheme clusters.
	Graphemes = tables.Graphemes
)

// DefaultWindow is the default width of the f-score window expanded per
// round.
const DefaultWindow = 20

var (
	// ErrNoStrings is returned by Search when called without inputs.
	ErrNoStrings = errors.New("mlcs: no input strings")
	// ErrInvalidOption wraps every rejected option.
	ErrInvalidOption = errors.New("invalid option")
	// ErrRoundLimit is returned when WithMaxRounds is exhausted before the
	// search finishes.
	ErrRoundLimit = errors.New("mlcs: round limit reached")
)

// Result contains the outcome of a search
type Result struct {
	// Subsequence is the common subsequence found, empty if none exists.
	Subsequence string
	// Length is the length of Subsequence in characters.
	Length int
	Found  bool
	// Rounds is the number of expansion rounds run.
	Rounds int
	// Expanded is the number of points whose successors were generated.
	Expanded int
	// Discovered is the number of distinct points ever scored.
	Discovered int
}

// Options defines parameters for the search.
type Options struct {
	Window          int
	NumberOfWorkers int
	MaxRounds       int
	Segmentation    Segmentation
	Normalize       bool
	Form            norm.Form
	Logger          logrus.FieldLogger
	Cache           *TableCache
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWindow sets how far below the best f-score a frontier point may lie
// and still be expanded in the same round. Zero expands only the best
// points.
func WithWindow(window int) Option {
	return func(options *Options) { options.Window = window }
}

// WithWorkers specifies how many goroutines expand the points of a round.
// Results do not depend on the number of workers.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxRounds bounds the number of expansion rounds; zero means no bound.
func WithMaxRounds(rounds int) Option {
	return func(options *Options) { options.MaxRounds = rounds }
}

// WithSegmentation selects how inputs are split into characters.
func WithSegmentation(segmentation Segmentation) Option {
	return func(options *Options) { options.Segmentation = segmentation }
}

// WithNormalization normalizes every input to form before it is split
// into characters.
func WithNormalization(form norm.Form) Option {
	return func(options *Options) {
		options.Normalize = true
		options.Form = form
	}
}

// WithLogger sets the logger that receives per-round debug entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithTableCache reuses preprocessed tables across searches.
func WithTableCache(cache *TableCache) Option {
	return func(options *Options) { options.Cache = cache }
}

func newOptions(options []Option) (Options, error) {
	searchOptions := Options{
		Window:          DefaultWindow,
		NumberOfWorkers: 1,
		Logger:          logrus.StandardLogger(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions, searchOptions.validate()
}

func (o Options) validate() error {
	errs := &cerrors.M{}
	if o.Window < 0 {
		errs.Append(errors.Wrapf(ErrInvalidOption, "window %d", o.Window))
	}
	if o.NumberOfWorkers < 1 {
		errs.Append(errors.Wrapf(ErrInvalidOption, "workers %d", o.NumberOfWorkers))
	}
	if o.MaxRounds < 0 {
		errs.Append(errors.Wrapf(ErrInvalidOption, "max rounds %d", o.MaxRounds))
	}
	if !o.Segmentation.Valid() {
		errs.Append(errors.Wrapf(ErrInvalidOption, "segmentation %v", o.Segmentation))
	}
	if o.Logger == nil {
		errs.Append(errors.Wrap(ErrInvalidOption, "nil logger"))
	}
	return errs.Err()
}

// instance returns the preprocessed tables for strs, from the cache when
// one is configured.
func (o Options) instance(strs []string) *tables.Instance {
	var key string
	if o.Cache != nil {
		key = tableKey(strs, o)
		if inst, ok := o.Cache.get(key); ok {
			return inst
		}
	}
	segments := make([][]string, len(strs))
	for i, s := range strs {
		if o.Normalize {
			s = o.Form.String(s)
		}
		segments[i] = tables.Segment(s, o.Segmentation)
	}
	inst := tables.Build(tables.Intern(segments))
	if o.Cache != nil {
		o.Cache.put(key, inst)
	}
	return inst
}

func prepare(strs []string, options []Option) (*search, error) {
	if len(strs) == 0 {
		return nil, ErrNoStrings
	}
	searchOptions, err := newOptions(options)
	if err != nil {
		return nil, err
	}
	return newSearch(searchOptions.instance(strs), searchOptions), nil
}

// Find returns one longest common subsequence of strs, or the empty
// string when there is none or no strings are given.
func Find(strs ...string) string {
	result, err := Search(context.Background(), strs)
	if err != nil {
		return ""
	}
	return result.Subsequence
}

// Search looks for a longest common subsequence of strs. Each round
// expands every frontier point within the window of the best f-score, so
// the result is a best-effort approximation when the window prunes an
// optimal branch. The context is checked between rounds.
func Search(
	contextObject context.Context,
	strs []string,
	options ...Option,
) (Result, error) {

	// --- Apply options and preprocess ---
	state, err := prepare(strs, options)
	if err != nil {
		return Result{}, err
	}

	// --- Expansion rounds ---
	for !state.done {
		if err := state.advance(contextObject); err != nil {
			return state.result(), err
		}
	}

	result := state.result()
	state.log.WithFields(logrus.Fields{
		"found":    result.Found,
		"length":   result.Length,
		"rounds":   result.Rounds,
		"expanded": result.Expanded,
	}).Debug("mlcs: search finished")
	return result, nil
}
