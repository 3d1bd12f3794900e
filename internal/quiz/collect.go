package quiz

// violationCollector accumulates every violation found on one record.
type violationCollector struct {
	violations []Violation
}

// add records a new violation.
func (c *violationCollector) add(field, message string) {
	c.violations = append(c.violations, Violation{Field: field, Message: message})
}

// empty reports whether the record passed so far.
func (c *violationCollector) empty() bool {
	return len(c.violations) == 0
}
