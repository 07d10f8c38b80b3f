package domain

// AnyValue is the schedule pattern matching every value of a field.
const AnyValue = "*"

// Field names used in violations and job files.
const (
	FieldMinute     = "min"
	FieldHour       = "hour"
	FieldDayOfMonth = "day"
	FieldMonth      = "month"
	FieldDayOfWeek  = "week_day"
	FieldYear       = "year"
	FieldCommand    = "command"
)

// Job represents a single crontab entry: a schedule pattern and the command
// executed when the system time matches it.
//
// Year is optional and not supported by every cron implementation.
type Job struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
	Year       string
	Command    string
}

// NewJob returns a job running command every minute. Callers narrow the
// schedule by overriding fields.
func NewJob(command string) Job {
	return Job{
		Minute:     AnyValue,
		Hour:       AnyValue,
		DayOfMonth: AnyValue,
		Month:      AnyValue,
		DayOfWeek:  AnyValue,
		Command:    command,
	}
}

// Schedule returns the schedule part of the job in line order, year included
// only when set.
func (j Job) Schedule() []string {
	parts := []string{j.Minute, j.Hour, j.DayOfMonth, j.Month, j.DayOfWeek}
	if j.Year != "" {
		parts = append(parts, j.Year)
	}
	return parts
}

// String returns the composed line without validation.
func (j Job) String() string {
	return composeLine(j)
}
