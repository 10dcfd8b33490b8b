package metrics

import "github.com/tarekkanon/nightshift-logistics/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
