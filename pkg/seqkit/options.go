package seqkit

import (
	"context"

	"go.llib.dev/traverse/internal/reflectkit"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
	"go.llib.dev/traverse/pkg/logger"
	"go.llib.dev/traverse/port/option"
)

// ErrReplacementType is returned when the WithReplacement value is not of the element type of the sequence.
const ErrReplacementType errorkit.Error = "replacement value does not match the element type"

type Option option.Option[Config]

// Config is the construction configuration of sequences.
type Config struct {
	// Lenient makes an absent backing source stand for an empty sequence.
	Lenient bool
	// Replacement is the value Remove writes into array-like sources.
	Replacement    any
	HasReplacement bool
	// Logger receives the debug output of the package.
	Logger *logger.Logger
}

func (c *Config) Init() {
	c.Logger = &logger.Default
}

// Lenient turns the strict null policy off:
// an absent backing source is treated as an empty sequence instead of an argument error.
func Lenient() Option {
	return option.Func[Config](func(c *Config) { c.Lenient = true })
}

// WithReplacement sets the value that overwrites the slot of a removed element in array-like sources.
// Without it, removal from such sources is unsupported.
func WithReplacement[T any](v T) Option {
	return option.Func[Config](func(c *Config) {
		c.Replacement = v
		c.HasReplacement = true
	})
}

// WithLogger sets the logger of the sequence.
// By default, logger.Default is used.
func WithLogger(l *logger.Logger) Option {
	return option.Func[Config](func(c *Config) { c.Logger = l })
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return cursorkit.ErrNilArgument.F("logger is absent")
	}
	return nil
}

func toConfig(constructor string, opts []Option) (Config, error) {
	c, err := option.ToConfig[Config](opts)
	return c, errorkit.At(errorkit.OpConstruct, constructor, err)
}

// prepare configures a constructor and applies the null policy to its backing source.
func prepare(constructor string, src any, opts []Option) (Config, bool, error) {
	c, err := toConfig(constructor, opts)
	if err != nil {
		return c, false, err
	}
	absent, err := c.checkSource(constructor, src)
	return c, absent, err
}

// checkSource applies the null policy to a backing source.
// It reports absent when the caller should substitute an empty sequence.
func (c Config) checkSource(constructor string, src any) (absent bool, err error) {
	if !reflectkit.IsNil(src) {
		return false, nil
	}
	if !c.Lenient {
		return true, errorkit.At(errorkit.OpConstruct, constructor, cursorkit.ErrNilArgument.F("backing source is absent"))
	}
	c.Logger.Debug(context.Background(), "absent backing source is treated as an empty sequence",
		logger.Field("constructor", constructor))
	return true, nil
}

func checkCallback(constructor, name string, fn any) error {
	if reflectkit.IsNil(fn) {
		return errorkit.At(errorkit.OpConstruct, constructor, cursorkit.ErrNilArgument.F("%s is absent", name))
	}
	return nil
}

func replacementOf[T any](c Config) (T, bool, error) {
	var zero T
	if !c.HasReplacement {
		return zero, false, nil
	}
	if c.Replacement == nil {
		return zero, true, nil
	}
	v, ok := c.Replacement.(T)
	if !ok {
		return zero, false, ErrReplacementType.F("expected %T, got %T", zero, c.Replacement)
	}
	return v, true, nil
}
