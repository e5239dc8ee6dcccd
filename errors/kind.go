package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher {
	return compose(WithCode(http.StatusBadRequest), WithKind(KindValidation))
}

func NotFound() ErrorEnricher {
	return compose(WithCode(http.StatusNotFound), WithKind(KindNotFound))
}

func Unauthorized() ErrorEnricher {
	return compose(WithCode(http.StatusUnauthorized), WithKind(KindUnauthorized))
}

func compose(fs ...ErrorEnricher) ErrorEnricher {
	return func(err error) error {
		for _, f := range fs {
			err = f(err)
		}
		return err
	}
}
