// Package glint is a leveled, styled logging facade with rich error traces.
//
// Messages carry one of twelve severities defined by the level package,
// from diagnostic scaffolding up to fatal failures, each with its own rank,
// glyph, and color. A logger filters below its threshold, routes messages
// at [level.Error] and above to its error stream, and renders attached
// errors as structured stack traces through the report package.
//
// # Basic Usage
//
//	log := glint.Get("api.handler")
//	log.Info("listening on {}", addr)
//	log.ErrorErr(err, "request {} failed", id)
//
// # Template Formatting
//
// Messages substitute "{}" placeholders left to right; see [Format]:
//
//	log.Debug("user {} has {} items", name, count)
//
// # Configuration
//
// Loggers are configured with functional options at creation:
//
//	log := glint.New(
//		glint.WithSource("worker"),
//		glint.WithThreshold(level.Debug),
//		glint.WithWriters(os.Stdout, os.Stderr))
//
// # Registry
//
// [Get] caches one logger per identity in the package-level [Default]
// registry. Bulk operations adjust thresholds across all cached loggers
// ([SetGlobalThreshold]) or under a namespace prefix
// ([SetNamespaceThreshold]); [SetDefaultThreshold] affects only loggers
// created afterwards. [Settings] applies the same operations from a YAML
// document.
//
// # Output Modes
//
// Enhanced mode, the default, prefixes each line with the severity label
// and glyph; plain mode drops the glyph. Multi-line messages repeat the
// prefix on every line. Styling degrades automatically on writers without
// color support.
//
// # Error Traces
//
// The Err-suffixed methods and [Logger.LogErr] append a formatted trace of
// the error after the message: type, message, package-grouped frames, and
// nested causes, rendered by the report package. Errors built with the errs
// package additionally contribute their severity, context, and package
// highlights.
package glint
