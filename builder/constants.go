// Package builder defines shared constants used by matrix builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodIdentity is the canonical name for the Identity constructor.
	MethodIdentity = "Identity"
	// MethodDiagonal is the canonical name for the Diagonal constructor.
	MethodDiagonal = "Diagonal"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Validation Domains
//-----------------------------------------------------------------------------

const (
	// MinDim is the smallest accepted row/column count.
	MinDim = 1
	// MinDensity is the inclusive lower bound of RandomSparse density.
	MinDensity = 0.0
	// MaxDensity is the inclusive upper bound of RandomSparse density.
	MaxDensity = 1.0
)
