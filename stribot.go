// Package stribot reports outdoor temperatures scraped from the NSU weather
// station page and the TGK district-heating status pages.
//
// This package contains domain types, parsing primitives and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// regexp/, http/).
package stribot
