// Package diagnostic collects configuration problems found while building
// a printer or applying a profile.
//
// Each problem carries a stable code and the rule target it relates to.
// All problems of one build are reported together as a single error.
package diagnostic
