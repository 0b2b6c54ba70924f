// Package ir provides the canonical value representation used to snapshot
// decoded trees and puzzle reports.
//
// Values are restricted to strings, integers, booleans, arrays and objects.
// There is no float and no null: every snapshot has exactly one canonical
// byte form, which is what golden files and digests are computed from.
//
// ir imports nothing internal.
package ir
