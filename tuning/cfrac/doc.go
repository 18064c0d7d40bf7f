// Package cfrac finds simple rational approximations of frequency ratios
// via continued fractions.
//
// A positive real value is first expanded into a bounded sequence of
// continued-fraction terms. Folding any prefix of that sequence back into
// a fraction yields a convergent, a rational number close to the value.
// The search keeps convergents that are both simple (numerator and
// denominator at most 1024) and musically close (within 30 cents of the
// value), which is what makes an equal-tempered fifth come out as 3/2.
package cfrac
