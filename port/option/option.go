// Package option holds the functional option idiom shared by the constructors of this module.
package option

// Option configures a Config value.
type Option[Config any] interface {
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig builds a Config out of opts.
//
// When *Config has an Init method, it sets the defaults before the first option,
// and when it has a Validate method, the result is only returned if Validate accepts it.
// Nil options are skipped.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) (Config, error) {
	var c Config
	if v, ok := any(&c).(initer); ok {
		v.Init()
	}
	for _, opt := range opts {
		if any(opt) == nil {
			continue
		}
		opt.Configure(&c)
	}
	if v, ok := any(&c).(validator); ok {
		if err := v.Validate(); err != nil {
			var zero Config
			return zero, err
		}
	}
	return c, nil
}

type initer interface{ Init() }

type validator interface{ Validate() error }
