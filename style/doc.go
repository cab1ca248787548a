// Package style provides the semantic terminal styling used by every
// rendered surface of the logging facade.
//
// Styling is expressed as a fixed set of named [Part] slots rather than raw
// colors, so the rest of the module never touches escape sequences directly.
// A [Theme] binds each part to a concrete [lipgloss] style for one output
// target, detecting the target's color capability at construction. Targets
// without styling support get a theme whose parts render text verbatim,
// which downstream renderers also use as the signal to fall back to simpler
// plain-text layouts.
//
// [lipgloss]: https://github.com/charmbracelet/lipgloss
package style
