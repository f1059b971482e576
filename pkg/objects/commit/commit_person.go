package commit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CommitPerson represents author or committer identity in a commit or
// tag header line.
//
// Wire format: "Name <email> timestamp timezone"
// Example: "John Doe <john@example.com> 1609459200 +0000"
type CommitPerson struct {
	Name  string
	Email string
	When  time.Time
}

// personPattern matches "Name <email> timestamp timezone"
var personPattern = regexp.MustCompile(`^(.+) <([^>]+)> (\d+) ([+-]\d{4})$`)

// NewCommitPerson creates a new CommitPerson with validation
func NewCommitPerson(name, email string, when time.Time) (*CommitPerson, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &CommitPerson{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		When:  when,
	}, nil
}

// Format renders the identity in wire format:
// "Name <email> timestamp timezone"
func (p *CommitPerson) Format() string {
	timestamp := p.When.Unix()
	_, offset := p.When.Zone()

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60

	return fmt.Sprintf("%s <%s> %d %s%02d%02d",
		p.Name, p.Email, timestamp, sign, hours, minutes)
}

// ParseCommitPerson parses an identity from wire format.
func ParseCommitPerson(wire string) (*CommitPerson, error) {
	matches := personPattern.FindStringSubmatch(wire)
	if matches == nil {
		return nil, fmt.Errorf("invalid person format: %s", wire)
	}

	name := matches[1]
	email := matches[2]

	timestamp, err := strconv.ParseInt(matches[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	location, err := parseTimezone(matches[4])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	when := time.Unix(timestamp, 0).In(location)

	return NewCommitPerson(name, email, when)
}

// String returns a human-readable representation
func (p *CommitPerson) String() string {
	return fmt.Sprintf("%s <%s> at %s", p.Name, p.Email, p.When.Format(time.RFC3339))
}

// Equal compares two CommitPerson instances for equality
func (p *CommitPerson) Equal(other *CommitPerson) bool {
	if other == nil {
		return false
	}
	return p.Name == other.Name &&
		p.Email == other.Email &&
		p.When.Unix() == other.When.Unix()
}

// validateName validates the person name
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateEmail validates the email address
func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !strings.Contains(trimmed, "@") {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// parseTimezone parses a timezone string like "+0530" or "-0800".
func parseTimezone(tzString string) (*time.Location, error) {
	if len(tzString) != 5 {
		return nil, fmt.Errorf("invalid timezone length: %s", tzString)
	}

	sign := tzString[0]
	if sign != '+' && sign != '-' {
		return nil, fmt.Errorf("invalid timezone sign: %c", sign)
	}

	hours, err := strconv.Atoi(tzString[1:3])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone hours: %w", err)
	}

	minutes, err := strconv.Atoi(tzString[3:5])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone minutes: %w", err)
	}

	offsetSeconds := hours*3600 + minutes*60
	if sign == '-' {
		offsetSeconds = -offsetSeconds
	}

	return time.FixedZone(tzString, offsetSeconds), nil
}
