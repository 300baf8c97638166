package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey int

const (
	ParamsKey ContextKey = iota
	LoggerKey
	RequestStart
	SessionKey
)

var Validate = validator.New()
