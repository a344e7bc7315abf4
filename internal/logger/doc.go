// Package logger provides a structured JSON logger for the matchmaker service,
// built on Uber's Zap.
//
// All packages in this repository log through the Logger wrapper, which takes
// a message, an optional error and optional field maps:
//
//	log.Info("match request served", nil, map[string]interface{}{
//	    "total_matches": n,
//	})
//
// Configuration is read from the environment (ZAP_LOGGER_LEVEL, SERVICE_NAME)
// and the logger is wired into the application through logger.FXModule, which
// also registers a shutdown hook that flushes buffered entries.
package logger
