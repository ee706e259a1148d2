package tracelog

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, errMsgConfigInvalid)
	}

	if _, err := ParseLevel(cfg.Threshold); err != nil {
		return errors.Wrap(err, errMsgConfigInvalid)
	}

	return nil
}
