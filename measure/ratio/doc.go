// Package ratio measures frequency ratios between recorded tones.
//
// It estimates the dominant frequency of a time-domain signal from its
// windowed magnitude spectrum and forms the interval ratio of two such
// estimates. The resulting ratio is the natural input for the
// continued-fraction approximation search in tuning/cfrac.
package ratio
