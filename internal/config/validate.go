package config

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "trfind/internal/errors"
	"trfind/internal/thresholds"
)

type validatorSvc struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// validation returns the singleton validator with english translations and
// flag names in messages.
func validation() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("flag"); name != "" {
				return "--" + name
			}
			return fld.Name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterValidation("matchprob", func(fl validator.FieldLevel) bool {
			_, err := thresholds.ForProbability(fl.Field().Float())
			return err == nil
		})
		_ = v.RegisterValidation("maxperiod", func(fl validator.FieldLevel) bool {
			n := fl.Field().Int()
			return n >= 1 && n <= int64(thresholds.MaxPeriod)
		})
		registerMessage(v, trans, "matchprob", "{0} must be 0.8 or 0.75")
		registerMessage(v, trans, "maxperiod", "{0} must be between 1 and "+strconv.Itoa(thresholds.MaxPeriod))
		registerMessage(v, trans, "oneof", "{0} must be one of [{1}]")

		vSvc = &validatorSvc{v: v, trans: trans}
	})
	return vSvc
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Validate checks every field and reports all violations in one error.
func (c Config) Validate() error {
	svc := validation()
	err := svc.v.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return perr.Wrap(err, perr.ErrorCodeConfig, "invalid configuration")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(svc.trans))
	}
	sort.Strings(msgs)
	return perr.New(perr.ErrorCodeConfig, strings.Join(msgs, "; "))
}
