// Package diagnostic provides structured findings for configuration
// validation: coded errors and warnings tied to a type pair and, where it
// applies, a single enum member.
package diagnostic
