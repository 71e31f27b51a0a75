package fakeapi

import (
	"github.com/elisiondan/kiwi/log"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

func correlationIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := c.Request().Header.Get("Correlation-ID")
		if correlationID == "" {
			correlationID = "gen_" + shortuuid.New()
		}

		ctx := c.Request().Context()
		ctx = log.ToContext(ctx, logrus.WithField("correlation_id", correlationID))
		ctx = log.ContextWithCorrelationID(ctx, correlationID)

		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set("Correlation-ID", correlationID)

		return next(c)
	}
}

func loggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := log.FromContext(c.Request().Context()).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		})
		logger.Debug("Handling a request")

		err := next(c)
		if err != nil {
			logger.WithError(err).Warn("Request failed")
		}

		return err
	}
}
