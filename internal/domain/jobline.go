package domain

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// lineParts is the number of space separated parts of a parsed line:
// five schedule fields and the command.
const lineParts = 6

var (
	minuteHourYearPattern = regexp.MustCompile(`^[0-9*/,-]+$`)
	monthPattern          = regexp.MustCompile(`(?i)^[A-Z0-9*/,-]+$`)
	dayOfMonthPattern     = regexp.MustCompile(`^[0-9*/,\-?LW]+$`)
	dayOfWeekPattern      = regexp.MustCompile(`^[A-Z0-6*/,\-L#]+$`)
)

type fieldRule struct {
	field    string
	label    string
	value    func(Job) string
	required bool
	pattern  *regexp.Regexp
}

// fieldRules lists the grammar of every job field in line order.
var fieldRules = []fieldRule{
	{field: FieldMinute, label: "Minutes", value: func(j Job) string { return j.Minute }, required: true, pattern: minuteHourYearPattern},
	{field: FieldHour, label: "Hours", value: func(j Job) string { return j.Hour }, required: true, pattern: minuteHourYearPattern},
	{field: FieldDayOfMonth, label: "Day of month", value: func(j Job) string { return j.DayOfMonth }, required: true, pattern: dayOfMonthPattern},
	{field: FieldMonth, label: "Month", value: func(j Job) string { return j.Month }, required: true, pattern: monthPattern},
	{field: FieldDayOfWeek, label: "Day of week", value: func(j Job) string { return j.DayOfWeek }, required: true, pattern: dayOfWeekPattern},
	{field: FieldYear, label: "Year", value: func(j Job) string { return j.Year }, pattern: minuteHourYearPattern},
	{field: FieldCommand, label: "Command to execute", value: func(j Job) string { return j.Command }, required: true},
}

// Validate checks every field of the job against its grammar and returns a
// *ValidationError listing all violations, or nil.
func (j Job) Validate() error {
	var errs *multierror.Error

	for _, rule := range fieldRules {
		value := rule.value(j)

		if strings.TrimSpace(value) == "" {
			if rule.required {
				errs = multierror.Append(errs, &FieldViolation{Field: rule.field, Label: rule.label, Value: value, Reason: "cannot be blank"})
			}
			continue
		}

		if rule.pattern != nil && !rule.pattern.MatchString(value) {
			errs = multierror.Append(errs, &FieldViolation{Field: rule.field, Label: rule.label, Value: value, Reason: "is invalid"})
		}
	}

	if strings.TrimSpace(j.Command) != "" && strings.ContainsAny(j.Command, "\r\n") {
		errs = multierror.Append(errs, &FieldViolation{Field: FieldCommand, Label: "Command to execute", Value: j.Command, Reason: "must be a single line"})
	}

	if errs == nil {
		return nil
	}
	return newValidationError(errs)
}

// Line validates the job and returns its crontab line.
func (j Job) Line() (string, error) {
	return ComposeLine(j)
}

// ComposeLine validates job and joins its fields into a crontab line:
// minute, hour, day of month, month, day of week, year when set, command.
func ComposeLine(job Job) (string, error) {
	if err := job.Validate(); err != nil {
		return "", err
	}
	return composeLine(job), nil
}

func composeLine(job Job) string {
	return strings.Join(append(job.Schedule(), job.Command), " ")
}

// ParseLine parses a crontab line into a Job.
//
// The command absorbs everything after the fifth space, embedded spaces
// included. A year field cannot be told apart from the first word of the
// command, so it is never recovered: a year present in the line ends up as
// part of Command.
func ParseLine(line string) (Job, error) {
	line = strings.TrimSpace(line)

	parts := strings.SplitN(line, " ", lineParts)
	if len(parts) < lineParts {
		return Job{}, &FormatError{Line: line, Parts: len(parts)}
	}

	return Job{
		Minute:     parts[0],
		Hour:       parts[1],
		DayOfMonth: parts[2],
		Month:      parts[3],
		DayOfWeek:  parts[4],
		Command:    parts[5],
	}, nil
}
