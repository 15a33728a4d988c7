package toml

import "github.com/sirupsen/logrus"

// logger is the diagnostics sink for the façade/CLI boundary (SPEC_FULL.md
// §4.8), grounded on vippsas-sqlcode's use of logrus.FieldLogger. It is a
// package-level variable, replaceable through SetLogger, not a parameter
// threaded through each call. The core parser itself never logs — only
// Parse's wrappers and the CLI do, keeping the recursive-descent parser
// free of I/O side effects.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger injects a custom logger, e.g. so a host application can
// route gotoml diagnostics into its own structured log stream.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

func logParseError(err *ParseError) {
	logger.WithFields(logrus.Fields{
		"kind":   err.Kind.String(),
		"line":   err.Line,
		"column": err.Column,
	}).Error(err.Message)
}
