package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatISO is the canonical calendar date format used across the service.
const FormatISO = "2006-01-02"

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date phrase to an absolute time.Time, using
// baseTime as the reference point (usually time.Now()).
// Recognized phrases: "today", "tomorrow", "yesterday", "next week",
// "this weekend", "in N days/weeks/months", "next <weekday>", a bare
// weekday name, and ISO dates (2006-01-02). Unrecognized phrases return
// the start of the base day along with an error.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	relative = strings.TrimPrefix(relative, "on ")

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "this weekend":
		return p.upcomingWeekday(baseTime, time.Saturday), nil
	}

	if isoDateRe.MatchString(relative) {
		t, err := time.ParseInLocation(FormatISO, relative, p.location)
		if err != nil {
			return p.startOfDay(baseTime), fmt.Errorf("invalid ISO date %q: %w", relative, err)
		}
		return t, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if day, ok := weekdays[strings.TrimPrefix(relative, "next ")]; ok {
		return p.upcomingWeekday(baseTime, day), nil
	}

	return p.startOfDay(baseTime), fmt.Errorf("unrecognized date phrase: %q", relative)
}

// ResolveISO maps a relative phrase to a canonical ISO date string.
// The boolean reports whether the phrase was recognized; callers supply
// their own fallback when it was not.
func (p *Parser) ResolveISO(relative string, baseTime time.Time) (string, bool) {
	t, err := p.Parse(relative, baseTime)
	if err != nil {
		return "", false
	}
	return t.Format(FormatISO), true
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return p.startOfDay(baseTime), fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// upcomingWeekday returns the next occurrence of target strictly after baseTime's day.
func (p *Parser) upcomingWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
