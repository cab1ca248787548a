// Package level defines the fixed severity scale shared by the whole
// logging facade.
//
// Each [Level] carries a numeric rank, and the scale forms a strict total
// order: [Stub] ranks lowest, [Off] highest, so a threshold of Off silences
// every level and a threshold of Stub admits them all. Per-level metadata
// (label, glyph, description, and the [style.Part] used to color it) lives
// in one immutable table.
//
// Conversions are deliberately forgiving. [FromRank] rounds an arbitrary
// number down to the nearest defined level, and [FromName] maps unknown
// names to [Info] with a side-channel warning instead of failing, since
// names usually originate from external configuration.
package level
