package escape

import (
	"fmt"

	"github.com/arloliu/runekit/char"
	"github.com/arloliu/runekit/errs"
	"github.com/arloliu/runekit/internal/options"
	"github.com/arloliu/runekit/printable"
)

// config holds the settings of Debug and Quote.
type config struct {
	oracle char.Printable
	quote  byte
}

// Option configures Debug, Quote and LenDebug.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		oracle: printable.Default,
		quote:  '"',
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithOracle sets the predicate deciding which characters Debug leaves
// unescaped. A nil oracle keeps printable.Default.
//
// The escapes \t \r \n \\ \' \" are applied regardless of the oracle.
func WithOracle(oracle func(rune) bool) Option {
	return options.NoError(func(c *config) {
		if oracle != nil {
			c.oracle = oracle
		}
	})
}

// WithQuote sets the delimiter Quote wraps its output in. Only '"' (the
// default) and '\'' are accepted; both are always escaped inside the output.
func WithQuote(quote rune) Option {
	return options.New(func(c *config) error {
		if quote != '"' && quote != '\'' {
			return fmt.Errorf("%w: %q", errs.ErrInvalidQuote, quote)
		}
		c.quote = byte(quote)

		return nil
	})
}
