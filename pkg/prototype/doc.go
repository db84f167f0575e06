// Package prototype implements the Prototype pattern for a small, closed
// hierarchy of self-cloning values.
//
// # Overview
//
// Intent: specify the kinds of objects to create using a prototypical
// instance, and create new objects by copying this prototype.
//
// Two variants are provided. Base carries an int and a string. Extended
// embeds Base and adds a bool. Callers that only hold the Value interface can
// still produce a copy of the right concrete variant through Copy, without
// knowing which variant they hold.
//
// # Cloning
//
// Every level of the hierarchy keeps its own fields in a plain aggregate
// (BaseFields, ExtendedFields). A clone is assembled in two steps:
//
//  1. the variant's own factory method (NewBase, NewExtended) produces a
//     blank instance of the concrete type being cloned
//  2. each level copies its aggregate onto that instance, base level first
//
// Aggregates hold only values, so the clone shares no mutable state with its
// source. No step narrows a partially built value back to a subtype, so a
// clone can never silently fall back to a default instance.
//
// # Equality
//
// Equal compares the base-level fields only. An Extended compared with
// another Extended that differs only in its bool is reported as equal. Use
// Identical for a comparison that also takes the variant and every level's
// fields into account.
//
// # Usage Example
//
//	p := prototype.NewExtended()
//	p.Update(prototype.WithIntValue(2), prototype.WithStringValue("Value2"))
//
//	c := p.Clone()        // *Extended
//	_ = c.Equal(p)        // true
//
//	var v prototype.Value = p
//	if ext, ok := v.Copy().(*prototype.Extended); ok {
//		_ = ext.BoolValue() // true
//	}
//
// # Registry
//
// New creates a default instance from a variant tag through a table of
// registered constructors, so configuration and CLI code can select a variant
// by name without reflection.
//
// # Logging
//
// Cloning has no side effects other than debug logging. Install a logger with
// SetLogger; every level emits one entry per clone, and the entries of a
// single clone share a clone_id.
package prototype
