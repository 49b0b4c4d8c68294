// Package sitesum provides a small web-page summarizer. It fetches a page,
// reduces it to its title and visible text, and asks a completion API for a
// short markdown summary that is shown through a minimal web form.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gin/).
package sitesum
