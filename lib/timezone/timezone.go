package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Chisinau")
	if err != nil {
		panic(err)
	}
}

// force the timezone the portal operates in, since servers deployed in
// other regions will cause disturbances when manipulating dates based
// on <time.Time>.Year()/Month()/Day()/Hour()/...
func Now() time.Time {
	return time.Now().In(Location)
}

// GetSchoolYear returns the calendar years spanned by the current
// school year, or by the previous one when called over summer break.
func GetSchoolYear(now time.Time) (startYear, endYear int) {
	year := now.Year()
	if now.Month() >= time.August {
		return year, year + 1
	}
	return year - 1, year
}
