package mocksmith

import (
	"strings"
	"time"
)

// Field-name heuristics: a field called "email" should get an email-shaped
// string. The catalog below is statically declared: every entry names its
// value domain up front, so resolution is a data lookup, never a probe of
// what a generator happens to return.

type valueDomain int

const (
	domainString valueDomain = iota
	domainNumber
	domainBool
	domainDate
)

type catalogEntry struct {
	name   string // normalized field name
	domain valueDomain
	draw   func(g *Context) any
}

var fieldCatalog = []catalogEntry{
	{"email", domainString, func(g *Context) any { return g.src.Email() }},
	{"emailaddress", domainString, func(g *Context) any { return g.src.Email() }},
	{"uuid", domainString, func(g *Context) any { return g.src.UUID() }},
	{"guid", domainString, func(g *Context) any { return g.src.UUID() }},
	{"id", domainString, func(g *Context) any { return g.src.UUID() }},
	{"url", domainString, func(g *Context) any { return g.src.URL() }},
	{"website", domainString, func(g *Context) any { return g.src.URL() }},
	{"homepage", domainString, func(g *Context) any { return g.src.URL() }},
	{"name", domainString, func(g *Context) any { return g.src.Name() }},
	{"fullname", domainString, func(g *Context) any { return g.src.Name() }},
	{"firstname", domainString, func(g *Context) any { return g.src.FirstName() }},
	{"lastname", domainString, func(g *Context) any { return g.src.LastName() }},
	{"surname", domainString, func(g *Context) any { return g.src.LastName() }},
	{"username", domainString, func(g *Context) any { return g.src.Username() }},
	{"phone", domainString, func(g *Context) any { return g.src.Phone() }},
	{"phonenumber", domainString, func(g *Context) any { return g.src.Phone() }},
	{"telephone", domainString, func(g *Context) any { return g.src.Phone() }},
	{"city", domainString, func(g *Context) any { return g.src.City() }},
	{"country", domainString, func(g *Context) any { return g.src.Country() }},
	{"company", domainString, func(g *Context) any { return g.src.Company() }},
	{"companyname", domainString, func(g *Context) any { return g.src.Company() }},
	{"jobtitle", domainString, func(g *Context) any { return g.src.JobTitle() }},
	{"ipaddress", domainString, func(g *Context) any { return g.src.IPv4() }},
	{"ipv4", domainString, func(g *Context) any { return g.src.IPv4() }},
	{"ipv6", domainString, func(g *Context) any { return g.src.IPv6() }},
	{"color", domainString, func(g *Context) any { return g.src.Color() }},
	{"colour", domainString, func(g *Context) any { return g.src.Color() }},
	{"age", domainNumber, func(g *Context) any { return g.src.IntBetween(1, 99) }},
	{"year", domainNumber, func(g *Context) any { return g.src.IntBetween(1970, g.anchor.Year()) }},
	{"count", domainNumber, func(g *Context) any { return g.src.IntBetween(0, 100) }},
	{"quantity", domainNumber, func(g *Context) any { return g.src.IntBetween(0, 100) }},
	{"price", domainNumber, func(g *Context) any { return g.src.Float64Between(0, 1000) }},
	{"active", domainBool, func(g *Context) any { return g.src.Bool() }},
	{"enabled", domainBool, func(g *Context) any { return g.src.Bool() }},
	{"birthday", domainDate, func(g *Context) any { return g.recentDate(365 * 40) }},
	{"createdat", domainDate, func(g *Context) any { return g.recentDate(recentWindowDays) }},
	{"updatedat", domainDate, func(g *Context) any { return g.recentDate(recentWindowDays) }},
}

// normalizeFieldName lowercases and strips separators so "Phone_Number",
// "phone-number", and "phoneNumber" all resolve alike.
func normalizeFieldName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '.', ' ':
			return -1
		}
		return r
	}, s)
}

// resolveFieldValue locates a semantically fitting value for a field name.
// The caller's FieldMapper always wins; otherwise the normalized name is
// matched against the catalog. ok=false pushes the caller back to its
// generic fallback.
func resolveFieldValue(g *Context, field string) (any, bool) {
	if field == "" {
		return nil, false
	}
	if g.fieldMapper != nil {
		if v, ok := g.fieldMapper(field); ok {
			return v, true
		}
	}
	norm := normalizeFieldName(field)
	for _, e := range fieldCatalog {
		if e.name == norm {
			return e.draw(g), true
		}
	}
	return nil, false
}

// colorFieldNames is the fixed catalog of color-related names recognized as
// a semantic category by the string synthesizer.
var colorFieldNames = map[string]bool{
	"color":           true,
	"colour":          true,
	"primarycolor":    true,
	"secondarycolor":  true,
	"backgroundcolor": true,
	"foregroundcolor": true,
	"bordercolor":     true,
	"accentcolor":     true,
}

// semanticString maps a field name straight to a category generator for
// the categories the string synthesizer recognizes on its own: email,
// UUID, URL, name, date/dateTime, colors, phone number.
func semanticString(g *Context, field string) (string, bool) {
	switch norm := normalizeFieldName(field); {
	case norm == "email" || norm == "emailaddress":
		return g.src.Email(), true
	case norm == "uuid" || norm == "guid":
		return g.src.UUID(), true
	case norm == "url" || norm == "website":
		return g.src.URL(), true
	case norm == "name" || norm == "fullname":
		return g.src.Name(), true
	case norm == "date" || norm == "datetime":
		return g.recentDate(recentWindowDays).Format(time.RFC3339), true
	case colorFieldNames[norm]:
		return g.src.HexColor(), true
	case norm == "phone" || norm == "phonenumber" || norm == "telephone":
		return g.src.Phone(), true
	}
	return "", false
}
