package cli

// TimeFormat is used for timestamps in tables.
const TimeFormat = "2006-01-02 15:04:05"
