// Package circuit provides the pure electrical derivations behind the
// animations: the loaded resistor divider and the divider-vs-regulator rail
// model. Every function is a deterministic function of its inputs with no
// retained state, so re-evaluating with unchanged parameters yields
// bit-identical results.
//
// Domain edges (non-positive resistances, vanishing denominators) surface as
// [ErrDomain] instead of propagating NaN or Inf into visuals.
package circuit
