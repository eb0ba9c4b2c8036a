// Package enumset discovers the member sets of stringer-backed enum types.
//
// Go reflection cannot enumerate the constants of a named type, so the
// prober leans on the contract of stringer-generated String() methods:
// declared members return their constant name, everything else returns the
// "Type(n)" fallback form.
package enumset
