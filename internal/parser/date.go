package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WireDate is the yyyy-mm-dd layout the backend serializes its dates with.
const WireDate = "2006-01-02"

// ParseDate turns user input into a wire date string.
// Supported formats:
// - yyyy-mm-dd (passed through after validation)
// - dd/mm/yyyy (e.g., "15/12/2026")
// - X days / X weeks (e.g., "3 days", "2 weeks")
func ParseDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}

	if t, err := time.Parse(WireDate, input); err == nil {
		return t.Format(WireDate), nil
	}

	if t, err := parseDayMonthYear(input); err == nil {
		return t.Format(WireDate), nil
	}

	if t, err := parseRelative(input); err == nil {
		return t.Format(WireDate), nil
	}

	return "", fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, X days, or X weeks")
}

var dayMonthYearPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// parseDayMonthYear parses dd/mm/yyyy format.
func parseDayMonthYear(input string) (time.Time, error) {
	matches := dayMonthYearPattern.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Round-trip check catches impossible dates like 31/02
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

var relativePattern = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)

// parseRelative parses relative formats like "3 days" or "2 weeks".
func parseRelative(input string) (time.Time, error) {
	matches := relativePattern.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	days := amount
	if strings.HasPrefix(matches[2], "week") {
		days = amount * 7
	}
	if days < 1 || days > 365 {
		return time.Time{}, fmt.Errorf("date must fall within a year from now")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, days), nil
}

// FormatDate renders a wire date for display, flagging overdue and
// imminent dates. Unparseable input is shown as-is rather than dropped.
func FormatDate(wire string) string {
	if wire == "" {
		return "-"
	}

	date, err := time.Parse(WireDate, wire)
	if err != nil {
		return wire
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(date.Sub(today).Hours() / 24)

	display := date.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("%s (overdue)", display)
	case daysDiff == 0:
		return fmt.Sprintf("%s (today)", display)
	case daysDiff == 1:
		return fmt.Sprintf("%s (tomorrow)", display)
	case daysDiff <= 7:
		return fmt.Sprintf("%s (in %d days)", display, daysDiff)
	}
	return display
}
