// Package pdg carries the PDG particle constants used by the analysis.
package pdg

// Masses in GeV/c^2.
const (
	PionMass    = 0.13957039
	K0ShortMass = 0.497611
)
